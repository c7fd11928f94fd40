package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	m "testwatch.dev/pkg/testwatch/internal/model"
)

// ErrOptionsNotFound is returned when the options file does not exist.
var ErrOptionsNotFound = errors.New("options file not found")

// OptionsStore reads and writes the pause/command-line options document.
type OptionsStore interface {
	// Read parses the options file. A malformed document returns an error and no snapshot.
	Read(ctx context.Context, path string) (m.OptionsSnapshot, error)
	// WriteDefault creates the options file with default values. Existing files are left alone.
	WriteDefault(ctx context.Context, path string) error
}

type optionValue struct {
	Value string `json:"value"`
}

type optionsDocument struct {
	Pause              optionValue `json:"pause"`
	CommandLineOptions optionValue `json:"commandLineOptions"`
}

// LocalOptionsStore is the file-backed OptionsStore.
type LocalOptionsStore struct{}

// NewLocalOptionsStore constructs a LocalOptionsStore.
func NewLocalOptionsStore() *LocalOptionsStore {
	return &LocalOptionsStore{}
}

// Read implements OptionsStore.
func (s *LocalOptionsStore) Read(ctx context.Context, path string) (m.OptionsSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return m.OptionsSnapshot{}, err
	}

	// #nosec G304 - path is the configured options file
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.OptionsSnapshot{}, fmt.Errorf("%s: %w", path, ErrOptionsNotFound)
		}

		return m.OptionsSnapshot{}, fmt.Errorf("read options file: %w", err)
	}

	var doc optionsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		slog.Error("Failed to parse options file", "path", path, "error", err)
		return m.OptionsSnapshot{}, fmt.Errorf("parse options file %s: %w", path, err)
	}

	return m.OptionsSnapshot{
		Paused:             isTruthy(doc.Pause.Value),
		CommandLineOptions: doc.CommandLineOptions.Value,
	}, nil
}

// WriteDefault implements OptionsStore.
func (s *LocalOptionsStore) WriteDefault(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc := optionsDocument{
		Pause:              optionValue{Value: "false"},
		CommandLineOptions: optionValue{Value: ""},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	// #nosec G304 - path is the configured options file
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create options file: %w", err)
	}

	defer func() { _ = file.Close() }()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write options file: %w", err)
	}

	return nil
}

// isTruthy accepts exactly "true", "y" and "t".
func isTruthy(value string) bool {
	switch value {
	case "true", "y", "t":
		return true
	}

	return false
}
