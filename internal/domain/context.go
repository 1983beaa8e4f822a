package domain

import "time"

// Oven describes the baking equipment available to the baker.
type Oven struct {
	ID             string   `json:"id,omitempty" yaml:"id"`
	Name           string   `json:"name,omitempty" yaml:"name"`
	Type           OvenType `json:"type" yaml:"type"`
	MaxTemperature float64  `json:"maxTemperature" yaml:"max_temperature"` // °C
	HasSteel       bool     `json:"hasSteel" yaml:"has_steel"`
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Distance returns how far v lies outside the range, or 0 when inside.
func (r Range) Distance(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min - v
	case v > r.Max:
		return v - r.Max
	default:
		return 0
	}
}

// FlourDefinition describes a flour. StrengthW of 0 means unknown.
type FlourDefinition struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	StrengthW     float64 `json:"strengthW,omitempty" yaml:"strength_w,omitempty"`
	HydrationHint *Range  `json:"hydrationHint,omitempty" yaml:"hydration_hint,omitempty"`
}

// Levain is a user-maintained sourdough culture.
type Levain struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Hydration   float64   `json:"hydration" yaml:"hydration"`
	TotalWeight float64   `json:"totalWeight" yaml:"total_weight"`
	LastFeeding time.Time `json:"lastFeeding" yaml:"last_feeding"`
	Status      string    `json:"status,omitempty" yaml:"status,omitempty"`
}

// HoursSinceFeeding returns the elapsed hours between the last feeding and now.
func (l Levain) HoursSinceFeeding(now time.Time) float64 {
	return now.Sub(l.LastFeeding).Hours()
}
