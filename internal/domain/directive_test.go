package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"testwatch.dev/pkg/testwatch/internal/domain"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

func TestScanDirectives(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []m.Directive
	}{
		{
			name: "two lines in order",
			text: "// RunTest unit/t1\n// RunTest unit/t2\n",
			want: []m.Directive{
				{Kind: m.Unit, Name: "t1", Line: 1},
				{Kind: m.Unit, Name: "t2", Line: 2},
			},
		},
		{
			name: "mixed kinds and trailing code",
			text: "class Foo { // RunTest integration/FooIntegrationTests\n}\n//RunTest unit/FooTests extra words",
			want: []m.Directive{
				{Kind: m.Integration, Name: "FooIntegrationTests", Line: 1},
				{Kind: m.Unit, Name: "FooTests", Line: 3},
			},
		},
		{
			name: "duplicates preserved",
			text: "// RunTest unit/A\n// RunTest unit/A",
			want: []m.Directive{
				{Kind: m.Unit, Name: "A", Line: 1},
				{Kind: m.Unit, Name: "A", Line: 2},
			},
		},
		{
			name: "two on one line",
			text: "// RunTest unit/A // RunTest integration/B",
			want: []m.Directive{
				{Kind: m.Unit, Name: "A", Line: 1},
				{Kind: m.Integration, Name: "B", Line: 1},
			},
		},
		{
			name: "identifier stops at second slash",
			text: "// RunTest unit/pkg/Deep",
			want: []m.Directive{{Kind: m.Unit, Name: "pkg", Line: 1}},
		},
		{
			name: "invalid kind skipped, scanning continues",
			text: "// RunTest Unit/A\n// RunTest functional/B\n// RunTest unit/C",
			want: []m.Directive{{Kind: m.Unit, Name: "C", Line: 3}},
		},
		{
			name: "missing identifier",
			text: "// RunTest unit/\n// RunTest unit",
			want: nil,
		},
		{
			name: "keyword needs whitespace after it",
			text: "// RunTestunit/A\n/* RunTest unit/B */",
			want: nil,
		},
		{
			name: "no directives",
			text: "class Foo {}\n",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ScanDirectives(tt.text))
		})
	}
}

func TestDirective_Identifier(t *testing.T) {
	directive := m.Directive{Kind: m.Integration, Name: "FooIntegrationTests", Line: 7}
	assert.Equal(t, m.TestIdentifier{Kind: m.Integration, Name: "FooIntegrationTests"}, directive.Identifier())
}
