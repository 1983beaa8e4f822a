package domain

// Suggestion is a machine-actionable proposed change to one config field.
type Suggestion struct {
	Key     ConfigField `json:"key"`
	Value   float64     `json:"value"`
	Message string      `json:"message"`
}

// SmartAdjustmentResult collects the output of the smart adjustment rules.
type SmartAdjustmentResult struct {
	Messages     []string     `json:"messages"`
	RiskWarnings []string     `json:"riskWarnings"`
	Suggestions  []Suggestion `json:"suggestions"`
}

// Merge appends other's lists to r, preserving order.
func (r *SmartAdjustmentResult) Merge(other SmartAdjustmentResult) {
	r.Messages = append(r.Messages, other.Messages...)
	r.RiskWarnings = append(r.RiskWarnings, other.RiskWarnings...)
	r.Suggestions = append(r.Suggestions, other.Suggestions...)
}

// EnvironmentInput is what the environment engine needs to know about the bake.
type EnvironmentInput struct {
	OvenType     OvenType    `json:"ovenType"`
	MaxOvenTempC float64     `json:"maxOvenTempC,omitempty"`
	Surface      SurfaceType `json:"surface"`
	Style        RecipeStyle `json:"style"`
	AmbientTempC float64     `json:"ambientTempC"`
	FlourTempC   *float64    `json:"flourTempC,omitempty"`
	TargetDDTC   float64     `json:"targetDDTC,omitempty"` // 0 means the default target
}

// EnvironmentAdvice is the environment engine's output.
type EnvironmentAdvice struct {
	Notes    []string `json:"notes"`
	Warnings []string `json:"warnings"`
	Flags    []string `json:"flags"`

	RecommendedWaterTempC      *float64    `json:"recommendedWaterTempC,omitempty"`
	RecommendedSurfaceOverride SurfaceType `json:"recommendedSurfaceOverride,omitempty"`
	RecommendedBakeTempC       float64     `json:"recommendedBakeTempC,omitempty"`
	RecommendedBakeTimeSeconds *[2]int     `json:"recommendedBakeTimeSeconds,omitempty"`
}

// HasFlag reports whether flag was raised.
func (a EnvironmentAdvice) HasFlag(flag string) bool {
	for _, f := range a.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// StyleFitBand is the display banding of a style-fit score.
type StyleFitBand int

const (
	FitLow StyleFitBand = iota
	FitMedium
	FitHigh
)

var fitBandNames = []string{"low", "medium", "high"}

func (b StyleFitBand) String() string { return enumString(fitBandNames, b) }

func (b StyleFitBand) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// AutoStyleInsightsResult is the style compatibility analysis.
type AutoStyleInsightsResult struct {
	IdealHydrationRange    string       `json:"idealHydrationRange"`
	IdealFermentationRange string       `json:"idealFermentationRange"`
	StyleFitScore          float64      `json:"styleFitScore"`
	Band                   StyleFitBand `json:"band"`
	RecommendedStyle       string       `json:"recommendedStyle,omitempty"` // style preset id
	MismatchWarnings       []string     `json:"mismatchWarnings"`
	ProfessionalNotes      []string     `json:"professionalNotes"`
}

// ConfigChange is one field difference surfaced for confirmation.
type ConfigChange struct {
	Key   ConfigField `json:"key"`
	Label string      `json:"label"`
	From  string      `json:"from"`
	To    string      `json:"to"`
}
