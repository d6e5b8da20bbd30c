package startup

import "time"

// Stage represents the lifecycle phase of a startup in the incubation pipeline
type Stage string

const (
	StageS0        Stage = "S0"
	StageS1        Stage = "S1"
	StageS2        Stage = "S2"
	StageS3        Stage = "S3"
	StageOneOnOne  Stage = "One-on-One"
	StageOnboarded Stage = "Onboarded"
	StageGraduated Stage = "Graduated"
	StageInactive  Stage = "Inactive"
	StageRejected  Stage = "Rejected"
)

// Stages lists every stage the live pipeline accepts.
var Stages = []Stage{
	StageS0, StageS1, StageS2, StageS3,
	StageOneOnOne, StageOnboarded, StageGraduated, StageInactive, StageRejected,
}

// Valid reports whether the stage is one of the known pipeline stages.
func (s Stage) Valid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// Startup represents one incubated company
type Startup struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Founder         string     `json:"founder"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Sector          string     `json:"sector,omitempty"`
	Stage           Stage      `json:"stage"`
	FundingAmount   float64    `json:"funding_amount"`
	AnnualRevenue   float64    `json:"annual_revenue"`
	Employees       int        `json:"employees"`
	Description     string     `json:"description,omitempty"`
	RecognitionDate *time.Time `json:"recognition_date,omitempty"`
	OnboardedDate   *time.Time `json:"onboarded_date,omitempty"`
	GraduationDate  *time.Time `json:"graduation_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ModifiedAt      time.Time  `json:"modified_at"`
}

// Achievement is a dated milestone owned by one startup
type Achievement struct {
	ID          string    `json:"id"`
	StartupID   string    `json:"startup_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AchievedOn  time.Time `json:"achieved_on"`
	CreatedAt   time.Time `json:"created_at"`
}

// ProgressEntry is one snapshot of a tracked metric for a startup
type ProgressEntry struct {
	ID         string    `json:"id"`
	StartupID  string    `json:"startup_id"`
	Metric     string    `json:"metric"`
	Value      float64   `json:"value"`
	RecordedOn time.Time `json:"recorded_on"`
	CreatedAt  time.Time `json:"created_at"`
}

// RevenueEntry is one revenue figure for a reporting period
type RevenueEntry struct {
	ID         string    `json:"id"`
	StartupID  string    `json:"startup_id"`
	Amount     float64   `json:"amount"`
	Period     string    `json:"period"`
	RecordedOn time.Time `json:"recorded_on"`
	CreatedAt  time.Time `json:"created_at"`
}

// StageTransition records one stage change for audit history
type StageTransition struct {
	ID             string    `json:"id"`
	StartupID      string    `json:"startup_id"`
	FromStage      Stage     `json:"from_stage"`
	ToStage        Stage     `json:"to_stage"`
	Note           string    `json:"note,omitempty"`
	TransitionedAt time.Time `json:"transitioned_at"`
}
