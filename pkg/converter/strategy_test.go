package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultStrategyCollapsesNewlineRuns(t *testing.T) {
	got := DefaultStrategy().Apply("a\n\n\n\n\nb")

	assert.NotContains(t, got, "\n\n\n")
	assert.Equal(t, "a\n\nb", got)
}

func TestApplyReachesFixpointWithinOneRule(t *testing.T) {
	// 13 placeholders: one pass leaves 9, the next leaves 5. Apply must
	// keep going until the pattern is gone.
	in := strings.Repeat("x", 13)
	got := DefaultStrategy().Apply(in)

	assert.NotContains(t, got, "xxxxxxx")
}

func TestApplyIsIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a\n\n\n\n\n\n\nb",
		"- - - nested markers",
		strings.Repeat("x", 30),
		"mixed\n\n\n- - list\n\n\n\nxxxxxxxxx",
	}
	s := DefaultStrategy()
	for _, in := range inputs {
		once := s.Apply(in)
		twice := s.Apply(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestApplyLeavesNoPatternBehind(t *testing.T) {
	s := DefaultStrategy()
	got := s.Apply("a\n\n\n\nb - - - c xxxxxxxxxxxxxx")
	for _, r := range s {
		assert.NotContains(t, got, r.Pattern)
	}
}

func TestApplyRespectsRuleOrder(t *testing.T) {
	// The second rule only matches an artifact the first one produces.
	s := Strategy{
		{Pattern: "a a", Replacement: "aa"},
		{Pattern: "aa", Replacement: "b"},
	}
	assert.Equal(t, "b", s.Apply("a a"))

	reversed := Strategy{
		{Pattern: "aa", Replacement: "b"},
		{Pattern: "a a", Replacement: "aa"},
	}
	assert.Equal(t, "aa", reversed.Apply("a a"))
}

func TestApplySkipsEmptyPattern(t *testing.T) {
	s := Strategy{{Pattern: "", Replacement: "zz"}}
	assert.Equal(t, "abc", s.Apply("abc"))
}

func TestApplyTerminatesOnSelfContainingReplacement(t *testing.T) {
	// "a" -> "aa" would never reach a fixpoint; it must run exactly once.
	s := Strategy{{Pattern: "a", Replacement: "aa"}}
	assert.Equal(t, "aa", s.Apply("a"))
}
