package domain

// StepPhase tags a technical step for presentation.
type StepPhase int

const (
	PhasePrep StepPhase = iota
	PhaseMix
	PhaseKnead
	PhaseBulk
	PhaseDivide
	PhaseProof
	PhaseBake
)

var phaseNames = []string{"prep", "mix", "knead", "bulk", "divide", "proof", "bake"}

func (p StepPhase) String() string { return enumString(phaseNames, p) }

func (p StepPhase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// TechnicalStep is one entry of a generated working method.
type TechnicalStep struct {
	ID                   string    `json:"id"`
	Phase                StepPhase `json:"phase"`
	Title                string    `json:"title"`
	ActionInstructions   string    `json:"actionInstructions"`
	DurationLabel        string    `json:"durationLabel,omitempty"`
	TemperatureLabel     string    `json:"temperatureLabel,omitempty"`
	TechnicalExplanation string    `json:"technicalExplanation,omitempty"`
	CriticalPoint        string    `json:"criticalPoint,omitempty"`
	ProTip               string    `json:"proTip,omitempty"`
	References           []string  `json:"references,omitempty"`
}
