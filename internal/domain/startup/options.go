package startup

// ListOptions provides filtering options for listing startups.
type ListOptions struct {
	Sector string
	Stages []Stage
	Limit  int
	Offset int
}
