package domain

// IntentType classifies what the user wants the workbench to do.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentSetField
	IntentSelectStyle
	IntentApplyRecommendation
	IntentAcceptSuggestion
	IntentShowFormula
	IntentShowAdvice
	IntentShowMethod
	IntentListStyles
	IntentReset
	IntentHelp
	IntentQuit
)

var intentNames = []string{
	"unknown",
	"set_field",
	"select_style",
	"apply_recommendation",
	"accept_suggestion",
	"show_formula",
	"show_advice",
	"show_method",
	"list_styles",
	"reset",
	"help",
	"quit",
}

// String returns a human-readable intent type.
func (i IntentType) String() string { return enumString(intentNames, i) }

// IntentFromString converts a snake_case intent name to an IntentType.
// Returns IntentUnknown for unrecognized names.
func IntentFromString(name string) IntentType {
	t, err := enumParse[IntentType]("intent", intentNames, nil, name)
	if err != nil {
		return IntentUnknown
	}
	return t
}

// Intent represents a parsed workbench command.
type Intent struct {
	Type    IntentType
	Field   ConfigField // for IntentSetField
	Payload string      // value, preset id, or suggestion number
}
