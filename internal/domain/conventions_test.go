package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"testwatch.dev/pkg/testwatch/internal/domain"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

func TestConventions_KindOf(t *testing.T) {
	conventions := domain.DefaultConventions()

	tests := []struct {
		path m.ChangedPath
		kind m.TestKind
		ok   bool
	}{
		{"/test/unit/FooTests.groovy", m.Unit, true},
		{"/test/unit", m.Unit, true},
		{"/test/integration/pkg/BarIntegrationTests.groovy", m.Integration, true},
		{"/test/unitx/FooTests.groovy", 0, false},
		{"/grails-app/services/FooService.groovy", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			kind, ok := conventions.KindOf(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestConventions_RootsAndSuffixes(t *testing.T) {
	conventions := domain.DefaultConventions()

	assert.Equal(t, "/test/unit", conventions.TestRoot(m.Unit))
	assert.Equal(t, "/test/integration", conventions.TestRoot(m.Integration))
	assert.Equal(t, "Tests", conventions.Suffix(m.Unit))
	assert.Equal(t, "IntegrationTests", conventions.Suffix(m.Integration))

	// The defaults are copied, so callers may edit them freely.
	conventions.SourceRoots[0] = "/elsewhere"
	assert.Equal(t, "/grails-app/controllers", domain.DefaultSourceRoots[0])
}
