package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// JourneyKind discriminates the variants of a journey entry.
type JourneyKind string

const (
	KindExperience JourneyKind = "experience"
	KindEducation  JourneyKind = "education"
)

// DateLayout is the calendar-date format used on the wire and in forms.
const DateLayout = "2006-01-02"

// JourneyDetail is the variant-specific part of a journey entry.
// It is implemented by Experience and Education only.
type JourneyDetail interface {
	Kind() JourneyKind
	// Headline returns the primary and secondary line shown in lists
	// (role/company or degree/institution).
	Headline() (title, organization string)
	journeyDetail()
}

// Experience is a work entry.
type Experience struct {
	Role    string
	Company string
}

func (Experience) Kind() JourneyKind            { return KindExperience }
func (e Experience) Headline() (string, string) { return e.Role, e.Company }
func (Experience) journeyDetail()               {}

// Education is a study entry.
type Education struct {
	Degree      string
	Institution string
}

func (Education) Kind() JourneyKind            { return KindEducation }
func (e Education) Headline() (string, string) { return e.Degree, e.Institution }
func (Education) journeyDetail()               {}

// JourneyEntry is one item on the experience/education timeline.
// EndDate is nil while the entry is ongoing.
type JourneyEntry struct {
	ID          ID
	Detail      JourneyDetail
	Description string
	StartDate   time.Time
	EndDate     *time.Time
}

// Kind returns the entry's variant.
func (j JourneyEntry) Kind() JourneyKind {
	if j.Detail == nil {
		return KindExperience
	}
	return j.Detail.Kind()
}

// Ongoing reports whether the entry has no end date.
func (j JourneyEntry) Ongoing() bool {
	return j.EndDate == nil
}

// NewJourneyDetail builds the variant for kind from a title and organization.
func NewJourneyDetail(kind JourneyKind, title, organization string) (JourneyDetail, error) {
	switch kind {
	case KindExperience:
		return Experience{Role: title, Company: organization}, nil
	case KindEducation:
		return Education{Degree: title, Institution: organization}, nil
	default:
		return nil, fmt.Errorf("domain.NewJourneyDetail: unknown kind %q", kind)
	}
}

type journeyWire struct {
	ID          ID          `json:"id"`
	Type        JourneyKind `json:"type,omitempty"`
	Role        string      `json:"role,omitempty"`
	Company     string      `json:"company,omitempty"`
	Degree      string      `json:"degree,omitempty"`
	Institution string      `json:"institution,omitempty"`
	Description string      `json:"description"`
	StartDate   string      `json:"startDate"`
	EndDate     *string     `json:"endDate"`
}

// UnmarshalJSON decodes an entry, resolving the variant once at the wire
// boundary: an explicit "type" wins, otherwise the role/company field set
// selects Experience and anything else is Education.
func (j *JourneyEntry) UnmarshalJSON(data []byte) error {
	var w journeyWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("domain.JourneyEntry: %w", err)
	}

	kind := w.Type
	if kind != KindExperience && kind != KindEducation {
		kind = KindEducation
		if w.Role != "" || w.Company != "" {
			kind = KindExperience
		}
	}
	switch kind {
	case KindExperience:
		j.Detail = Experience{Role: w.Role, Company: w.Company}
	default:
		j.Detail = Education{Degree: w.Degree, Institution: w.Institution}
	}

	j.ID = w.ID
	j.Description = w.Description
	j.StartDate = time.Time{}
	j.EndDate = nil
	if w.StartDate != "" {
		start, err := ParseDate(w.StartDate)
		if err != nil {
			return fmt.Errorf("domain.JourneyEntry: startDate: %w", err)
		}
		j.StartDate = start
	}
	if w.EndDate != nil && *w.EndDate != "" {
		end, err := ParseDate(*w.EndDate)
		if err != nil {
			return fmt.Errorf("domain.JourneyEntry: endDate: %w", err)
		}
		j.EndDate = &end
	}
	return nil
}

// ParseDate accepts a calendar date (2006-01-02) or a full RFC 3339
// timestamp and returns the calendar date in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
