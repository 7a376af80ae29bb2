// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures for base-converter.
// Base and Values are consumed by the converter, the session state, the CLI
// and the HTTP surface alike.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Base is a supported radix.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases lists the supported radixes in display order.
var Bases = []Base{Binary, Octal, Decimal, Hexadecimal}

type baseInfo struct {
	name   string
	short  string
	prefix string
}

var baseTable = map[Base]baseInfo{
	Binary:      {name: "Binary", short: "bin", prefix: "0b"},
	Octal:       {name: "Octal", short: "oct", prefix: "0o"},
	Decimal:     {name: "Decimal", short: "dec", prefix: ""},
	Hexadecimal: {name: "Hexadecimal", short: "hex", prefix: "0x"},
}

// Valid reports whether b is one of the supported radixes.
func (b Base) Valid() bool {
	_, ok := baseTable[b]
	return ok
}

// Name returns the display name (e.g. "Hexadecimal").
func (b Base) Name() string {
	if info, ok := baseTable[b]; ok {
		return info.name
	}
	return fmt.Sprintf("Base %d", int(b))
}

// Short returns the abbreviated name used on the command line (e.g. "hex").
func (b Base) Short() string {
	return baseTable[b].short
}

// Prefix returns the literal prefix for the radix; decimal has none.
func (b Base) Prefix() string {
	return baseTable[b].prefix
}

func (b Base) String() string {
	return b.Name()
}

// ParseBase accepts a radix number ("16"), a short name ("hex") or a display
// name ("Hexadecimal"), case-insensitively.
func ParseBase(s string) (Base, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if b := Base(n); b.Valid() {
			return b, nil
		}
		return 0, fmt.Errorf("unsupported base %d: use 2, 8, 10 or 16", n)
	}
	for _, b := range Bases {
		info := baseTable[b]
		if s == info.short || s == strings.ToLower(info.name) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown base %q: use 2, 8, 10, 16 or bin, oct, dec, hex", s)
}

// Values maps each base to its unprefixed digits. It holds either all four
// supported bases or none.
type Values map[Base]string

// IsEmpty reports whether no conversion result is present.
func (v Values) IsEmpty() bool {
	return len(v) == 0
}

// Literal returns the prefixed form of the value in base b, with the sign
// ahead of the prefix ("-0xFF"). It returns "" when no value is present.
func (v Values) Literal(b Base) string {
	digits, ok := v[b]
	if !ok || digits == "" {
		return ""
	}
	if rest, neg := strings.CutPrefix(digits, "-"); neg {
		return "-" + b.Prefix() + rest
	}
	return b.Prefix() + digits
}

// Entry is the per-base view of a conversion used for rendering.
type Entry struct {
	Base    Base   `json:"base" yaml:"base"`
	Name    string `json:"name" yaml:"name"`
	Prefix  string `json:"prefix" yaml:"prefix"`
	Digits  string `json:"digits" yaml:"digits"`
	Literal string `json:"literal" yaml:"literal"`
}

// Entries returns the values in display order. It returns an empty,
// non-nil slice when v is empty.
func (v Values) Entries() []Entry {
	entries := make([]Entry, 0, len(Bases))
	if v.IsEmpty() {
		return entries
	}
	for _, b := range Bases {
		entries = append(entries, Entry{
			Base:    b,
			Name:    b.Name(),
			Prefix:  b.Prefix(),
			Digits:  v[b],
			Literal: v.Literal(b),
		})
	}
	return entries
}

// BaseDescriptor describes a supported base for clients that build their own
// input fields.
type BaseDescriptor struct {
	Base   Base   `json:"base" yaml:"base"`
	Name   string `json:"name" yaml:"name"`
	Short  string `json:"short" yaml:"short"`
	Prefix string `json:"prefix" yaml:"prefix"`
}

// Descriptors returns a descriptor for every supported base in display order.
func Descriptors() []BaseDescriptor {
	out := make([]BaseDescriptor, len(Bases))
	for i, b := range Bases {
		out[i] = BaseDescriptor{Base: b, Name: b.Name(), Short: b.Short(), Prefix: b.Prefix()}
	}
	return out
}
