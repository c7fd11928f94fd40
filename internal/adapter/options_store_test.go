package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalOptionsStore_Read(t *testing.T) {
	tests := []struct {
		name        string
		doc         string
		wantPaused  bool
		wantOptions string
	}{
		{"pause true", `{"pause":{"value":"true"},"commandLineOptions":{"value":"-echoOut"}}`, true, "-echoOut"},
		{"pause y", `{"pause":{"value":"y"},"commandLineOptions":{"value":""}}`, true, ""},
		{"pause t", `{"pause":{"value":"t"},"commandLineOptions":{"value":""}}`, true, ""},
		{"pause TRUE is not truthy", `{"pause":{"value":"TRUE"},"commandLineOptions":{"value":""}}`, false, ""},
		{"pause yes is not truthy", `{"pause":{"value":"yes"},"commandLineOptions":{"value":""}}`, false, ""},
		{"pause false", `{"pause":{"value":"false"},"commandLineOptions":{"value":"-coverage"}}`, false, "-coverage"},
		{"missing keys", `{}`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewLocalOptionsStore()
			path := filepath.Join(t.TempDir(), "testwatch.opts.json")
			writeTestFile(t, path, tt.doc)

			got, err := store.Read(context.Background(), path)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}

			if got.Paused != tt.wantPaused {
				t.Fatalf("Read() Paused = %v, want %v", got.Paused, tt.wantPaused)
			}

			if got.CommandLineOptions != tt.wantOptions {
				t.Fatalf("Read() CommandLineOptions = %q, want %q", got.CommandLineOptions, tt.wantOptions)
			}
		})
	}
}

func TestLocalOptionsStore_Read_Malformed(t *testing.T) {
	store := NewLocalOptionsStore()
	path := filepath.Join(t.TempDir(), "testwatch.opts.json")
	writeTestFile(t, path, `{"pause": {"value": `)

	if _, err := store.Read(context.Background(), path); err == nil {
		t.Fatalf("Read() expected parse error")
	}
}

func TestLocalOptionsStore_Read_Missing(t *testing.T) {
	store := NewLocalOptionsStore()

	_, err := store.Read(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, ErrOptionsNotFound) {
		t.Fatalf("Read() error = %v, want ErrOptionsNotFound", err)
	}
}

func TestLocalOptionsStore_WriteDefault(t *testing.T) {
	store := NewLocalOptionsStore()
	path := filepath.Join(t.TempDir(), "testwatch.opts.json")

	if err := store.WriteDefault(context.Background(), path); err != nil {
		t.Fatalf("WriteDefault() error = %v", err)
	}

	got, err := store.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Read() after WriteDefault() error = %v", err)
	}

	if got.Paused || got.CommandLineOptions != "" {
		t.Fatalf("default snapshot = %+v, want zero snapshot", got)
	}

	t.Run("does not overwrite an existing file", func(t *testing.T) {
		if err := store.WriteDefault(context.Background(), path); err == nil {
			t.Fatalf("WriteDefault() expected error for existing file")
		}

		if _, err := os.Stat(path); err != nil {
			t.Fatalf("existing file disappeared: %v", err)
		}
	})
}
