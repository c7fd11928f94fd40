package domain

import (
	"strings"

	m "testwatch.dev/pkg/testwatch/internal/model"
)

// Flags understood by the test tool for narrowing a run to one kind.
const (
	UnitFlag        = "-unit"
	IntegrationFlag = "-integration"
)

// DefaultSubcommand is the tool subcommand that runs tests.
const DefaultSubcommand = "test-app"

// CommandBuilder turns a selection into the narrowest tool invocation.
type CommandBuilder interface {
	Build(selection m.Selection) (m.Command, bool)
}

type commandBuilder struct {
	subcommand string
}

// NewCommandBuilder creates a CommandBuilder for the given subcommand.
func NewCommandBuilder(subcommand string) CommandBuilder {
	if subcommand == "" {
		subcommand = DefaultSubcommand
	}

	return &commandBuilder{subcommand: subcommand}
}

// Build returns false when nothing was selected.
func (b *commandBuilder) Build(selection m.Selection) (m.Command, bool) {
	unit := selection.UnitNames()
	integration := selection.IntegrationNames()

	args := []string{b.subcommand}

	switch {
	case len(unit) > 0 && len(integration) == 0:
		args = append(append(args, UnitFlag), unit...)
	case len(unit) == 0 && len(integration) > 0:
		args = append(append(args, IntegrationFlag), integration...)
	case len(unit) > 0 && len(integration) > 0:
		args = append(append(args, unit...), integration...)
	default:
		return m.Command{}, false
	}

	return m.Command{Args: args}, true
}

// CommandLine assembles the shell line `<tool> <command> <extra>`.
func CommandLine(tool string, command m.Command, extra string) string {
	parts := make([]string, 0, 3)

	for _, part := range []string{strings.TrimSpace(tool), command.String(), strings.TrimSpace(extra)} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}
