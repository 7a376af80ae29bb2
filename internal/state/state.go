// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package state holds the per-session conversion state: which base the user
// edited last and the values derived from it.
//
// A State is owned by a single goroutine (the interactive loop or one
// websocket session) and is not safe for concurrent use.
package state

import (
	"github.com/pdiddy/base-converter/internal/clipboard"
	"github.com/pdiddy/base-converter/internal/convert"
	"github.com/pdiddy/base-converter/pkg/types"
)

// DefaultBase is the base marked as last edited in a fresh or cleared session.
const DefaultBase = types.Decimal

// State is the source-of-truth controller for one converter session.
type State struct {
	values     types.Values
	lastEdited types.Base
	copied     types.Base
}

// New returns an empty session.
func New() *State {
	return &State{values: types.Values{}, lastEdited: DefaultBase}
}

// Edit records that the user typed text into the field for base. The
// previous values are replaced, not merged: input that does not parse
// blanks every field, including the one being edited.
func (s *State) Edit(base types.Base, text string) {
	s.lastEdited = base
	s.values = convert.ConvertFrom(text, base)
	s.copied = 0
}

// ClearAll empties every field and resets the last edited base.
func (s *State) ClearAll() {
	s.values = types.Values{}
	s.lastEdited = DefaultBase
	s.copied = 0
}

// Copy writes the prefixed literal for base to cb. It reports whether there
// was a value to copy. Clipboard failures are ignored.
func (s *State) Copy(base types.Base, cb clipboard.Writer) bool {
	lit := s.values.Literal(base)
	if lit == "" {
		return false
	}
	_ = cb.WriteText(lit)
	s.copied = base
	return true
}

// Values returns a copy of the current values.
func (s *State) Values() types.Values {
	out := make(types.Values, len(s.values))
	for b, v := range s.values {
		out[b] = v
	}
	return out
}

// LastEdited returns the base most recently edited.
func (s *State) LastEdited() types.Base {
	return s.lastEdited
}

// Copied returns the base whose value was last copied, if no edit has
// happened since.
func (s *State) Copied() (types.Base, bool) {
	return s.copied, s.copied != 0
}

// Snapshot is an immutable view of a session for rendering.
type Snapshot struct {
	LastEdited types.Base    `json:"last_edited" yaml:"last_edited"`
	Copied     types.Base    `json:"copied,omitempty" yaml:"copied,omitempty"`
	Values     []types.Entry `json:"values" yaml:"values"`
}

// Snapshot returns the current session view.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		LastEdited: s.lastEdited,
		Copied:     s.copied,
		Values:     s.values.Entries(),
	}
}
