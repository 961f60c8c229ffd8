package options

import "github.com/zclconf/go-cty/cty"

// Source names the layer an entry was produced by.
type Source string

const (
	SourceDefault Source = "default"
	SourceEnv     Source = "env"
	SourceVCS     Source = "vcs"
	SourceFile    Source = "file"
	SourceCLI     Source = "cli"
)

// Priorities per source. A lower number indicates a higher priority.
const (
	PriorityCLI     = 0
	PriorityFile    = 1
	PriorityEnv     = 2
	PriorityVCS     = 2
	PriorityDefault = 3
)

// Entry represents a single option value with provenance and priority.
type Entry struct {
	Key        string
	Value      cty.Value
	Source     Source
	SourcePath string
	Priority   int
}

// Snapshot is a collection of entries keyed by option name.
type Snapshot map[string]Entry

// Merge merges another snapshot into this one respecting priority
// (lower number indicates higher priority). At equal priority the
// incoming entry wins.
func (s Snapshot) Merge(other Snapshot) {
	for k, e := range other {
		if existing, ok := s[k]; !ok || e.Priority <= existing.Priority {
			s[k] = e
		}
	}
}

// Values returns the bare values of the snapshot, keyed by option name.
func (s Snapshot) Values() map[string]cty.Value {
	out := make(map[string]cty.Value, len(s))
	for k, e := range s {
		out[k] = e.Value
	}
	return out
}

// Clone returns a shallow copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, e := range s {
		out[k] = e
	}
	return out
}
