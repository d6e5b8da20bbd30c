package importer

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Bundle is the denormalized legacy export submitted for import. Startups carry
// their child collections inline; meeting schedules reference startups by the
// export's own non-persistent id.
type Bundle struct {
	Startups          []BundleStartup  `json:"startups"`
	SMCSchedules      []BundleSchedule `json:"smcSchedules"`
	OneOnOneSchedules []BundleSchedule `json:"oneOnOneSchedules"`
}

// BundleStartup is one loosely-typed startup record from the export. Several
// attributes arrive under more than one legacy alias; normalization picks the
// first non-empty one.
type BundleStartup struct {
	LocalID         string     `json:"id"`
	CompanyName     string     `json:"companyName"`
	Name            string     `json:"name"`
	FounderName     string     `json:"founderName"`
	Founder         string     `json:"founder"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Mobile          string     `json:"mobile"`
	Sector          string     `json:"sector"`
	Industry        string     `json:"industry"`
	Stage           string     `json:"stage"`
	Status          string     `json:"status"`
	FundingAmount   FlexNumber `json:"fundingAmount"`
	Funding         FlexNumber `json:"funding"`
	AnnualRevenue   FlexNumber `json:"annualRevenue"`
	Revenue         FlexNumber `json:"revenue"`
	Employees       FlexNumber `json:"employees"`
	Description     string     `json:"description"`
	About           string     `json:"about"`
	RecognitionDate string     `json:"recognitionDate"`
	OnboardingDate  string     `json:"onboardingDate"`
	GraduationDate  string     `json:"graduationDate"`

	Achievements     []BundleAchievement   `json:"achievements"`
	RevenueHistory   []BundleRevenueEntry  `json:"revenueHistory"`
	ProgressTracking []BundleProgressEntry `json:"progressTracking"`
}

// BundleAchievement is one embedded milestone.
type BundleAchievement struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// BundleRevenueEntry is one embedded revenue figure.
type BundleRevenueEntry struct {
	Amount FlexNumber `json:"amount"`
	Period string     `json:"period"`
	Date   string     `json:"date"`
}

// BundleProgressEntry is one embedded progress-tracking snapshot.
type BundleProgressEntry struct {
	Metric string     `json:"metric"`
	Value  FlexNumber `json:"value"`
	Date   string     `json:"date"`
}

// BundleSchedule is one loosely-linked meeting schedule. StartupID is the
// bundle-local id of the startup, not a persisted id. Agenda may carry the
// legacy pipe-packed slot|completedAt|stage string.
type BundleSchedule struct {
	StartupID string `json:"startupId"`
	Date      string `json:"date"`
	TimeSlot  string `json:"timeSlot"`
	Agenda    string `json:"agenda"`
	Notes     string `json:"notes"`
}

// FlexNumber accepts a JSON number, a numeric string, null, or garbage.
// Anything that doesn't parse coerces to 0; unmarshaling never fails.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*n = 0
		return nil
	}

	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*n = FlexNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*n = FlexNumber(f)
			return nil
		}
	}

	*n = 0
	return nil
}

func (n FlexNumber) Float64() float64 {
	return float64(n)
}

func (n FlexNumber) Int() int {
	return int(n)
}
