// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "fmt"

// DefaultSpacesPerStage is the indentation width of one nesting stage.
const DefaultSpacesPerStage = 4

// BracketStyle selects how attributes are bracketed.
type BracketStyle uint8

const (
	// BracketC writes attributes as [name(args)].
	BracketC BracketStyle = iota

	// BracketCPP11 writes attributes as [[name(args)]].
	BracketCPP11
)

// String returns "c" or "cpp11".
func (s BracketStyle) String() string {
	switch s {
	case BracketC:
		return "c"
	case BracketCPP11:
		return "cpp11"
	default:
		return fmt.Sprintf("BracketStyle(%d)", uint8(s))
	}
}

// open returns the opening bracket sequence.
func (s BracketStyle) open() string {
	if s == BracketCPP11 {
		return "[["
	}
	return "["
}

// close returns the closing bracket sequence.
func (s BracketStyle) close() string {
	if s == BracketCPP11 {
		return "]]"
	}
	return "]"
}

// ParseBracketStyle parses "c" or "cpp11". The empty string is BracketC.
func ParseBracketStyle(s string) (BracketStyle, error) {
	switch s {
	case "", "c", "C":
		return BracketC, nil
	case "cpp11", "CPP11", "c++11":
		return BracketCPP11, nil
	default:
		return BracketC, fmt.Errorf("unknown bracket style %q (want c or cpp11)", s)
	}
}

// Options configures a Writer or a Reader.
// Options are copied at construction; later changes have no effect.
type Options struct {
	// IL selects EXISL mode. IL operations fail on non-IL documents.
	IL bool

	// BracketStyle selects the attribute bracket pair.
	// A BracketC reader also accepts [[...]] attributes.
	BracketStyle BracketStyle

	// SpacesPerStage is the indentation width per nesting stage.
	// Values < 1 fall back to DefaultSpacesPerStage. Writer only.
	SpacesPerStage int

	// Version is written into the IL version line.
	// The zero value means CurrentVersion(). Writer only.
	Version Version

	// PrologueComment is the comment line written after the IL marker.
	// Empty means DefaultPrologueComment. Writer only.
	PrologueComment string

	// TrimSpace trims leading and trailing whitespace from each line
	// the reader returns. Reader only.
	TrimSpace bool
}

// DefaultOptions returns options for a plain (non-IL) document with
// C-style attributes, four spaces per stage and trimmed reader lines.
func DefaultOptions() *Options {
	return &Options{
		IL:             false,
		BracketStyle:   BracketC,
		SpacesPerStage: DefaultSpacesPerStage,
		TrimSpace:      true,
	}
}

// ILOptions returns DefaultOptions with IL mode enabled.
func ILOptions() *Options {
	opts := DefaultOptions()
	opts.IL = true
	return opts
}

// normalized returns a copy with defaults applied.
func (o *Options) normalized() Options {
	if o == nil {
		return *DefaultOptions()
	}
	out := *o
	if out.SpacesPerStage < 1 {
		out.SpacesPerStage = DefaultSpacesPerStage
	}
	if out.Version.IsZero() {
		out.Version = CurrentVersion()
	}
	if out.PrologueComment == "" {
		out.PrologueComment = DefaultPrologueComment
	}
	return out
}
