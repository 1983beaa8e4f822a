// Package conversation turns workbench input into intents.
package conversation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/doughlab/internal/domain"
	"github.com/hammamikhairi/doughlab/internal/logger"
)

// Compile-time interface check.
var _ domain.CommandParser = (*KeywordParser)(nil)

// KeywordParser matches workbench input to intents using keywords and a
// small verb grammar.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(apply|recommend|switch)$`), domain.IntentApplyRecommendation},
		{regexp.MustCompile(`(?i)^(formula|calc|weights|show)$`), domain.IntentShowFormula},
		{regexp.MustCompile(`(?i)^(advice|advise|tips|warnings)$`), domain.IntentShowAdvice},
		{regexp.MustCompile(`(?i)^(method|steps|how)$`), domain.IntentShowMethod},
		{regexp.MustCompile(`(?i)^(reset|defaults|new)$`), domain.IntentReset},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q|bye)$`), domain.IntentQuit},
	}
	return p
}

// Parse converts user input into an intent. Input that matches nothing is
// returned as IntentUnknown with the input as payload. Malformed commands
// return an error.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// A bare number accepts the matching suggestion.
	if isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentAcceptSuggestion, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	verb, rest := splitVerb(strings.ReplaceAll(trimmed, "=", " "))
	switch verb {
	case "set":
		field, value := splitVerb(rest)
		return p.setField(field, value)
	case "style", "preset", "use":
		if rest == "" {
			return &domain.Intent{Type: domain.IntentListStyles}, nil
		}
		return &domain.Intent{Type: domain.IntentSelectStyle, Payload: rest}, nil
	case "styles", "presets", "list", "search":
		return &domain.Intent{Type: domain.IntentListStyles, Payload: rest}, nil
	case "accept", "take":
		if !isDigits(rest) {
			return nil, fmt.Errorf("accept needs a suggestion number, got %q: %w", rest, domain.ErrUnknownValue)
		}
		return &domain.Intent{Type: domain.IntentAcceptSuggestion, Payload: rest}, nil
	case "technique", "method":
		if rest == "" {
			return &domain.Intent{Type: domain.IntentShowMethod}, nil
		}
		return p.setField("fermentation_technique", rest)
	case "yeast":
		return p.yeast(rest)
	}

	// "<field> <value>" shorthand.
	if rest != "" {
		if _, err := domain.ParseField(verb); err == nil {
			return p.setField(verb, rest)
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func (p *KeywordParser) setField(name, value string) (*domain.Intent, error) {
	field, err := domain.ParseField(name)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, fmt.Errorf("set %s: missing value: %w", field, domain.ErrUnknownValue)
	}
	p.log.Debug("set %s = %q", field, value)
	return &domain.Intent{Type: domain.IntentSetField, Field: field, Payload: value}, nil
}

// yeast handles "yeast <pct>", "yeast <type>" and "yeast <type> <pct>".
func (p *KeywordParser) yeast(rest string) (*domain.Intent, error) {
	if rest == "" {
		return nil, fmt.Errorf("yeast: missing type or percentage: %w", domain.ErrUnknownValue)
	}
	first, _ := splitVerb(rest)
	if _, err := strconv.ParseFloat(strings.TrimSuffix(first, "%"), 64); err == nil {
		return p.setField("yeast_percentage", rest)
	}
	return p.setField("yeast_type", rest)
}

// splitVerb splits s at the first run of spaces and lowercases the head.
func splitVerb(s string) (head, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return strings.ToLower(s), ""
	}
	return strings.ToLower(s[:i]), strings.TrimSpace(s[i+1:])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
