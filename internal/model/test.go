package model

import (
	"fmt"
	"strings"
)

// TestKind distinguishes unit tests from integration tests.
type TestKind int

const (
	// Unit tests live under the unit test root and run with -unit.
	Unit TestKind = iota
	// Integration tests live under the integration test root and run with -integration.
	Integration
)

// String returns the directive word for the kind.
func (k TestKind) String() string {
	switch k {
	case Unit:
		return "unit"
	case Integration:
		return "integration"
	default:
		return fmt.Sprintf("TestKind(%d)", int(k))
	}
}

// ParseTestKind maps an exact, case-sensitive kind word to a TestKind.
func ParseTestKind(word string) (TestKind, bool) {
	switch word {
	case "unit":
		return Unit, true
	case "integration":
		return Integration, true
	}

	return 0, false
}

// TestIdentifier is a bare test name paired with its kind.
type TestIdentifier struct {
	Kind TestKind
	Name string
}

// Directive is a "RunTest" reference found in source text.
type Directive struct {
	Kind TestKind
	Name string
	Line int
}

// Identifier returns the test referenced by the directive.
func (d Directive) Identifier() TestIdentifier {
	return TestIdentifier{Kind: d.Kind, Name: d.Name}
}

// Selection holds the tests discovered for one batch of changes.
type Selection struct {
	Unit        []TestIdentifier
	Integration []TestIdentifier
}

// Empty reports whether nothing was selected.
func (s Selection) Empty() bool {
	return len(s.Unit) == 0 && len(s.Integration) == 0
}

// UnitNames returns the names of the selected unit tests.
func (s Selection) UnitNames() []string {
	return names(s.Unit)
}

// IntegrationNames returns the names of the selected integration tests.
func (s Selection) IntegrationNames() []string {
	return names(s.Integration)
}

func names(ids []TestIdentifier) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Name)
	}

	return out
}

// Command is the argument list handed to the test tool.
type Command struct {
	Args []string
}

// String renders the command space-joined.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}
