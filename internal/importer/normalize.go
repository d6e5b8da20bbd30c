package importer

import (
	"strings"
	"time"

	"github.com/seedbed/incubator/internal/domain/startup"
)

// stageAliases maps every legacy stage label (lowercased) onto the coarse
// import-time stage set. The lookup is total: unrecognized labels land on
// Onboarded, so no record can fail on its stage.
var stageAliases = map[string]startup.Stage{
	"s0":         startup.StageOnboarded,
	"s1":         startup.StageOnboarded,
	"s2":         startup.StageOnboarded,
	"s3":         startup.StageOnboarded,
	"active":     startup.StageOnboarded,
	"onboarded":  startup.StageOnboarded,
	"one-on-one": startup.StageOnboarded,
	"graduated":  startup.StageGraduated,
	"inactive":   startup.StageInactive,
	"rejected":   startup.StageInactive,
}

// MapStage normalizes a legacy stage label to one of
// {Onboarded, Graduated, Inactive}. It always returns a value.
func MapStage(label string) startup.Stage {
	if stage, ok := stageAliases[strings.ToLower(strings.TrimSpace(label))]; ok {
		return stage
	}
	return startup.StageOnboarded
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

// ParseDate parses a legacy date string against the known layouts. A missing
// or malformed date resolves to the current time; it never fails a record.
func ParseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value != "" {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t
			}
		}
	}
	return time.Now()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// displayName identifies a bundle startup in error reports.
func displayName(bs *BundleStartup) string {
	if name := firstNonEmpty(bs.CompanyName, bs.Name); name != "" {
		return name
	}
	if bs.Email != "" {
		return bs.Email
	}
	return "(unnamed startup)"
}

// normalized holds the mapped attribute values for one bundle startup.
type normalized struct {
	Name            string
	Founder         string
	Email           string
	Phone           string
	Sector          string
	Stage           startup.Stage
	FundingAmount   float64
	AnnualRevenue   float64
	Employees       int
	Description     string
	RecognitionDate time.Time
	OnboardedDate   time.Time
	GraduationDate  time.Time
}

// normalizeStartup maps legacy aliases onto the target attributes: first
// non-empty alias wins, numbers coerce with a 0 default, the stage lookup is
// total, and every date resolves through the tolerant parser.
func normalizeStartup(bs *BundleStartup) normalized {
	return normalized{
		Name:            firstNonEmpty(bs.CompanyName, bs.Name),
		Founder:         firstNonEmpty(bs.FounderName, bs.Founder),
		Email:           strings.ToLower(strings.TrimSpace(bs.Email)),
		Phone:           firstNonEmpty(bs.Phone, bs.Mobile),
		Sector:          firstNonEmpty(bs.Sector, bs.Industry),
		Stage:           MapStage(firstNonEmpty(bs.Stage, bs.Status)),
		FundingAmount:   firstNonZero(bs.FundingAmount, bs.Funding),
		AnnualRevenue:   firstNonZero(bs.AnnualRevenue, bs.Revenue),
		Employees:       bs.Employees.Int(),
		Description:     firstNonEmpty(bs.Description, bs.About),
		RecognitionDate: ParseDate(bs.RecognitionDate),
		OnboardedDate:   ParseDate(bs.OnboardingDate),
		GraduationDate:  ParseDate(bs.GraduationDate),
	}
}

func firstNonZero(values ...FlexNumber) float64 {
	for _, v := range values {
		if v != 0 {
			return v.Float64()
		}
	}
	return 0
}

// apply overwrites every mapped field on the startup. This is an update, not a
// merge: absent bundle values overwrite with their defaults.
func (n normalized) apply(st *startup.Startup) {
	st.Name = n.Name
	st.Founder = n.Founder
	st.Email = n.Email
	st.Phone = n.Phone
	st.Sector = n.Sector
	st.Stage = n.Stage
	st.FundingAmount = n.FundingAmount
	st.AnnualRevenue = n.AnnualRevenue
	st.Employees = n.Employees
	st.Description = n.Description
	st.RecognitionDate = &n.RecognitionDate
	st.OnboardedDate = &n.OnboardedDate
	st.GraduationDate = &n.GraduationDate
}
