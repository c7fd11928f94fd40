package domain

import (
	"log/slog"
	"regexp"
	"strings"

	m "testwatch.dev/pkg/testwatch/internal/model"
)

// DirectiveKeyword marks an inline test reference: `// RunTest unit/FooTests`.
const DirectiveKeyword = "RunTest"

var directivePattern = regexp.MustCompile(`//[ \t]*` + DirectiveKeyword + `[ \t]+(\S+)`)

// ScanDirectives extracts every RunTest directive in text, in order of appearance.
// Duplicates are kept. References with an unknown kind word are logged and skipped.
func ScanDirectives(text string) []m.Directive {
	var directives []m.Directive

	for i, line := range strings.Split(text, "\n") {
		for _, match := range directivePattern.FindAllStringSubmatch(line, -1) {
			directive, ok := parseDirective(match[1], i+1)
			if !ok {
				slog.Error("Unrecognized RunTest directive",
					"reference", match[1],
					"line", i+1,
					"suggestion", `use "unit/MyUnitTests" or "integration/MyIntegrationTests"`,
				)

				continue
			}

			directives = append(directives, directive)
		}
	}

	return directives
}

// parseDirective splits "<kind>/<name>"; anything after a second slash is ignored.
func parseDirective(reference string, line int) (m.Directive, bool) {
	word, rest, found := strings.Cut(reference, "/")
	if !found {
		return m.Directive{}, false
	}

	kind, ok := m.ParseTestKind(word)
	if !ok {
		return m.Directive{}, false
	}

	name, _, _ := strings.Cut(rest, "/")
	if name == "" {
		return m.Directive{}, false
	}

	return m.Directive{Kind: kind, Name: name, Line: line}, true
}
