package model

// Category is the qualitative bucket for a percent change.
type Category string

const (
	CategoryLargeDecrease Category = "LARGE_DECREASE"
	CategorySmallDecrease Category = "SMALL_DECREASE"
	CategoryNoChange      Category = "NO_CHANGE"
	CategorySmallIncrease Category = "SMALL_INCREASE"
	CategoryLargeIncrease Category = "LARGE_INCREASE"
)

// Categories lists every category from largest decrease to largest increase.
var Categories = []Category{
	CategoryLargeDecrease,
	CategorySmallDecrease,
	CategoryNoChange,
	CategorySmallIncrease,
	CategoryLargeIncrease,
}

// Severity is the presentation tag attached to a category.
type Severity string

const (
	SeverityDanger    Severity = "danger"
	SeverityWarning   Severity = "warning"
	SeveritySecondary Severity = "secondary"
	SeverityInfo      Severity = "info"
	SeveritySuccess   Severity = "success"
)

// Classification is the interpretation of a change between two index values.
type Classification struct {
	MeanDifference float64  `json:"mean_difference" yaml:"mean_difference"`
	PercentChange  float64  `json:"percent_change" yaml:"percent_change"`
	Category       Category `json:"category" yaml:"category"`
	Headline       string   `json:"headline" yaml:"headline"`
	Narrative      string   `json:"narrative" yaml:"narrative"`
	Severity       Severity `json:"severity" yaml:"severity"`
}
