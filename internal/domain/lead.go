package domain

import "time"

type HomeType string

const (
	HomeTypeNew  HomeType = "new"
	HomeTypeUsed HomeType = "used"
)

func (h HomeType) Valid() bool {
	return h == HomeTypeNew || h == HomeTypeUsed
}

func (h HomeType) Label() string {
	if h == HomeTypeNew {
		return "New"
	}
	return "Used"
}

type CreditRange string

const (
	CreditExcellent CreditRange = "excellent"
	CreditGood      CreditRange = "good"
	CreditFair      CreditRange = "fair"
	CreditPoor      CreditRange = "poor"
)

func (c CreditRange) Valid() bool {
	switch c {
	case CreditExcellent, CreditGood, CreditFair, CreditPoor:
		return true
	}
	return false
}

func (c CreditRange) Label() string {
	switch c {
	case CreditExcellent:
		return "Excellent"
	case CreditGood:
		return "Good"
	case CreditFair:
		return "Fair"
	case CreditPoor:
		return "Poor"
	}
	return string(c)
}

type Timeline string

const (
	TimelineImmediate   Timeline = "immediate"
	TimelineOneToThree  Timeline = "1-3months"
	TimelineThreeToSix  Timeline = "3-6months"
	TimelineResearching Timeline = "researching"
)

func (t Timeline) Valid() bool {
	switch t {
	case TimelineImmediate, TimelineOneToThree, TimelineThreeToSix, TimelineResearching:
		return true
	}
	return false
}

func (t Timeline) Label() string {
	switch t {
	case TimelineImmediate:
		return "Immediate"
	case TimelineOneToThree:
		return "1-3 months"
	case TimelineThreeToSix:
		return "3-6 months"
	case TimelineResearching:
		return "Just researching"
	}
	return string(t)
}

// Lead is a consumer's submitted contact/interest record. Created once by the
// submission pipeline, never updated or deleted; re-read only for the
// duplicate-window check.
type Lead struct {
	ID             string
	Name           string
	Email          string
	Phone          string // digits only, exactly 10
	State          string
	PropertyState  string
	HomeType       HomeType
	CreditRange    CreditRange
	Timeline       Timeline
	AdditionalInfo string // optional, trimmed; empty means absent
	SourcePage     string
	IPAddress      string
	UserAgent      string
	CreatedAt      time.Time
}

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Color is the accent used in the operator notification email.
func (p Priority) Color() string {
	switch p {
	case PriorityHigh:
		return "#dc2626"
	case PriorityMedium:
		return "#f59e0b"
	}
	return "#6b7280"
}

// ClassifyPriority buckets a lead for notification presentation only; it has
// no effect on persistence or response semantics.
func ClassifyPriority(timeline Timeline, credit CreditRange) Priority {
	if timeline == TimelineImmediate {
		return PriorityHigh
	}
	if timeline == TimelineOneToThree && (credit == CreditExcellent || credit == CreditGood) {
		return PriorityMedium
	}
	return PriorityLow
}
