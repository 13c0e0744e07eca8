package app

import "github.com/shantanu-hashcash/soroban-tools/internal/types"

type CheckRequest struct {
	SpecPath     string
	ComposeFile  string
	WorkflowFile string
	CargoHome    string
}

type CheckResult struct {
	Report types.CheckReport
}

type PinsRequest struct {
	SpecPath     string
	ComposeFile  string
	WorkflowFile string
}

// PinEntry is one independently-pinned revision, listed for manual
// inspection without comparison.
type PinEntry struct {
	Source string
	Value  string
}

type PinsResult struct {
	Pins []PinEntry
}
