package domain

import m "testwatch.dev/pkg/testwatch/internal/model"

// Conventions describes where tests live relative to the sources they cover.
type Conventions struct {
	// SourceRoots are tried in order; each is replaced by the test root of the kind.
	SourceRoots       []string
	UnitRoot          string
	UnitSuffix        string
	IntegrationRoot   string
	IntegrationSuffix string
}

// DefaultSourceRoots are the Grails source directories that have conventional tests.
var DefaultSourceRoots = []string{
	"/grails-app/controllers",
	"/grails-app/domain",
	"/grails-app/services",
	"/grails-app/taglib",
	"/grails-app/utils",
	"/src/groovy",
}

// DefaultConventions returns the standard Grails layout.
func DefaultConventions() Conventions {
	return Conventions{
		SourceRoots:       append([]string{}, DefaultSourceRoots...),
		UnitRoot:          "/test/unit",
		UnitSuffix:        "Tests",
		IntegrationRoot:   "/test/integration",
		IntegrationSuffix: "IntegrationTests",
	}
}

// TestRoot returns the directory holding tests of the given kind.
func (c Conventions) TestRoot(kind m.TestKind) string {
	if kind == m.Integration {
		return c.IntegrationRoot
	}

	return c.UnitRoot
}

// Suffix returns the file name suffix tests of the given kind carry.
func (c Conventions) Suffix(kind m.TestKind) string {
	if kind == m.Integration {
		return c.IntegrationSuffix
	}

	return c.UnitSuffix
}

// KindOf classifies a path by the test root it lives under.
func (c Conventions) KindOf(path m.ChangedPath) (m.TestKind, bool) {
	switch {
	case path.Under(c.UnitRoot):
		return m.Unit, true
	case path.Under(c.IntegrationRoot):
		return m.Integration, true
	}

	return 0, false
}
