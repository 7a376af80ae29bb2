// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/base-converter/pkg/types"
)

// fakeClipboard records writes and optionally fails.
type fakeClipboard struct {
	written []string
	err     error
}

func (f *fakeClipboard) WriteText(text string) error {
	f.written = append(f.written, text)
	return f.err
}

func TestNew(t *testing.T) {
	s := New()
	assert.True(t, s.Values().IsEmpty())
	assert.Equal(t, types.Decimal, s.LastEdited())
	_, ok := s.Copied()
	assert.False(t, ok)
}

func TestEdit(t *testing.T) {
	s := New()
	s.Edit(types.Hexadecimal, "ff")

	assert.Equal(t, types.Hexadecimal, s.LastEdited())
	assert.Equal(t, types.Values{
		types.Binary:      "11111111",
		types.Octal:       "377",
		types.Decimal:     "255",
		types.Hexadecimal: "FF",
	}, s.Values())
}

func TestEditReplacesInsteadOfMerging(t *testing.T) {
	s := New()
	s.Edit(types.Decimal, "255")
	require.Len(t, s.Values(), 4)

	s.Edit(types.Binary, "2")
	assert.Equal(t, types.Binary, s.LastEdited())
	assert.True(t, s.Values().IsEmpty(), "failed parse must blank every field")

	s.Edit(types.Octal, "10")
	assert.Equal(t, "8", s.Values()[types.Decimal])
}

func TestEditEmptyInputBlanks(t *testing.T) {
	s := New()
	s.Edit(types.Decimal, "42")
	s.Edit(types.Hexadecimal, "   ")
	assert.True(t, s.Values().IsEmpty())
	assert.Equal(t, types.Hexadecimal, s.LastEdited())
}

func TestClearAll(t *testing.T) {
	s := New()
	s.Edit(types.Hexadecimal, "ff")
	s.ClearAll()
	assert.True(t, s.Values().IsEmpty())
	assert.Equal(t, types.Decimal, s.LastEdited())
}

func TestValuesIsACopy(t *testing.T) {
	s := New()
	s.Edit(types.Decimal, "1")
	v := s.Values()
	v[types.Decimal] = "999"
	assert.Equal(t, "1", s.Values()[types.Decimal])
}

func TestCopy(t *testing.T) {
	tests := []struct {
		name     string
		edit     string
		base     types.Base
		cbErr    error
		wantOK   bool
		wantText []string
	}{
		{name: "hex literal", edit: "255", base: types.Hexadecimal, wantOK: true, wantText: []string{"0xFF"}},
		{name: "decimal has no prefix", edit: "255", base: types.Decimal, wantOK: true, wantText: []string{"255"}},
		{name: "negative binary", edit: "-5", base: types.Binary, wantOK: true, wantText: []string{"-0b101"}},
		{name: "clipboard failure ignored", edit: "8", base: types.Octal, cbErr: errors.New("denied"), wantOK: true, wantText: []string{"0o10"}},
		{name: "nothing to copy", edit: "", base: types.Hexadecimal, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Edit(types.Decimal, tt.edit)
			cb := &fakeClipboard{err: tt.cbErr}

			ok := s.Copy(tt.base, cb)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantText, cb.written)

			copied, has := s.Copied()
			assert.Equal(t, tt.wantOK, has)
			if tt.wantOK {
				assert.Equal(t, tt.base, copied)
			}
		})
	}
}

func TestCopiedClearedByEdit(t *testing.T) {
	s := New()
	s.Edit(types.Decimal, "10")
	s.Copy(types.Hexadecimal, &fakeClipboard{})
	s.Edit(types.Decimal, "11")
	_, ok := s.Copied()
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	assert.Equal(t, types.Decimal, snap.LastEdited)
	assert.Empty(t, snap.Values)

	s.Edit(types.Octal, "17")
	s.Copy(types.Hexadecimal, &fakeClipboard{})
	snap = s.Snapshot()
	assert.Equal(t, types.Octal, snap.LastEdited)
	assert.Equal(t, types.Hexadecimal, snap.Copied)
	require.Len(t, snap.Values, 4)
	assert.Equal(t, "0xF", snap.Values[3].Literal)
}
