// Package exisl emits and scans EXISL shader source.
//
// EXISL is an HLSL-based intermediate dialect used to store shader graphs as
// text. The hlsl package holds the line-level engine (writer, reader, type
// registry); this package builds on it with whole-document operations:
//
//   - Emit renders a Document, usually loaded from YAML with LoadDocument.
//   - Scan classifies every line of a source and extracts its data.
//   - Filter selects scanned lines with an expression such as
//     `Context == "ILNodeStart" && Name startsWith "blur"`.
//   - Diff compares two sources line by line.
//
// Example usage:
//
//	doc, err := exisl.LoadDocument(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src, err := exisl.Emit(doc, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lines, err := exisl.Scan(src, hlsl.ILOptions(), nil)
package exisl

import (
	"io"
	"log/slog"
)

// Options configures the document-level operations.
type Options struct {
	// Logger receives debug records about renamed nodes and lines that
	// failed extraction. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns options that discard log output.
func DefaultOptions() *Options {
	return &Options{}
}

// logger returns the configured logger or a discarding one.
func (o *Options) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}
