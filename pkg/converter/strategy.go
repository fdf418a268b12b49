package converter

import (
	"strings"
)

// Rule is a single literal-substring replacement. Patterns are not regular
// expressions.
type Rule struct {
	Pattern     string `json:"pattern" yaml:"pattern"`
	Replacement string `json:"replacement" yaml:"replacement"`
}

// Strategy is an ordered list of replacement rules. Each rule runs to
// fixpoint before the next one starts; later rules may depend on artifacts
// left behind by earlier ones, so the order matters.
type Strategy []Rule

// DefaultStrategy returns the baseline cleanup rules applied after the
// generic Markdown formatter:
//
//   - runs of three or more newlines collapse to a single blank line
//   - repeated placeholder characters left by the extraction engine shrink
//   - malformed nested list markers ("- -") flatten
func DefaultStrategy() Strategy {
	return Strategy{
		{Pattern: "\n\n\n", Replacement: "\n\n"},
		{Pattern: "xxxxxxx", Replacement: "xxx"},
		{Pattern: "- -", Replacement: "-"},
	}
}

// Apply runs every rule in order. Within one rule, replacement repeats until
// the pattern no longer occurs, so occurrences created by a prior pass of the
// same rule are caught too.
//
// Two guards keep Apply total: rules with an empty pattern are skipped, and a
// rule whose replacement still contains its own pattern is applied once
// instead of recursively. Neither case occurs in the default strategy.
func (s Strategy) Apply(text string) string {
	for _, r := range s {
		if r.Pattern == "" {
			continue
		}
		if strings.Contains(r.Replacement, r.Pattern) {
			text = strings.ReplaceAll(text, r.Pattern, r.Replacement)
			continue
		}
		for strings.Contains(text, r.Pattern) {
			text = strings.ReplaceAll(text, r.Pattern, r.Replacement)
		}
	}
	return text
}
