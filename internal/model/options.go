package model

// OptionsSnapshot is the state of the options file at its last successful read.
type OptionsSnapshot struct {
	Paused             bool
	CommandLineOptions string
}
