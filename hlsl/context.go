// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import (
	"fmt"
	"strings"
	"unicode"
)

// ContextType is the syntactic classification of a single line.
type ContextType uint8

// Line contexts. Exactly one applies to any line.
const (
	ContextNone ContextType = iota
	ContextPragma
	ContextDefineStart
	ContextDefineEnd
	ContextInclude
	ContextAttribute
	ContextMethodStart
	ContextMethodEnd
	ContextIL
	ContextILDefine
	ContextILAttribute
	ContextILNodeStart
	ContextILNodeEnd
	ContextILCommentNodeStart
	ContextILCommentNodeEnd
)

var contextNames = [...]string{
	ContextNone:               "None",
	ContextPragma:             "Pragma",
	ContextDefineStart:        "DefineStart",
	ContextDefineEnd:          "DefineEnd",
	ContextInclude:            "Include",
	ContextAttribute:          "Attribute",
	ContextMethodStart:        "MethodStart",
	ContextMethodEnd:          "MethodEnd",
	ContextIL:                 "IL",
	ContextILDefine:           "ILDefine",
	ContextILAttribute:        "ILAttribute",
	ContextILNodeStart:        "ILNodeStart",
	ContextILNodeEnd:          "ILNodeEnd",
	ContextILCommentNodeStart: "ILCommentNodeStart",
	ContextILCommentNodeEnd:   "ILCommentNodeEnd",
}

// String returns the context name, e.g. "ILNodeStart".
func (c ContextType) String() string {
	if int(c) < len(contextNames) {
		return contextNames[c]
	}
	return fmt.Sprintf("ContextType(%d)", uint8(c))
}

// IsIL reports whether the context only exists in IL documents.
func (c ContextType) IsIL() bool {
	return c >= ContextIL && c <= ContextILCommentNodeEnd
}

// ParseContextType parses a context name as returned by String.
func ParseContextType(s string) (ContextType, bool) {
	for i, name := range contextNames {
		if name == s {
			return ContextType(i), true
		}
	}
	return ContextNone, false
}

// ContextTypes returns every context in declaration order.
func ContextTypes() []ContextType {
	out := make([]ContextType, len(contextNames))
	for i := range contextNames {
		out[i] = ContextType(i)
	}
	return out
}

// Classify classifies line in isolation.
//
// The first whitespace-delimited token (with a trailing ';' ignored) is
// matched against the directive keywords, then, when il is set, against the
// IL vocabulary; the line is then checked for an attribute opener of the
// given style and finally for a lone block bracket. The first match wins.
func Classify(line string, il bool, style BracketStyle) ContextType {
	line = strings.TrimSpace(line)
	if line == "" {
		return ContextNone
	}
	word := strings.TrimSuffix(firstToken(line), ";")

	switch word {
	case KeywordPragma:
		return ContextPragma
	case KeywordDefine, KeywordIf, KeywordIfDef, KeywordIfNDef:
		return ContextDefineStart
	case KeywordUndef, KeywordEndIf:
		return ContextDefineEnd
	case KeywordInclude:
		return ContextInclude
	}

	if il {
		switch {
		case word == ILMarker:
			return ContextIL
		case word == ILNodeKeyword:
			return ContextILNodeStart
		case word == ILEndNodeKeyword:
			return ContextILNodeEnd
		case strings.HasPrefix(word, ILCommentNodeKeyword+"("):
			return ContextILCommentNodeStart
		case word == ILEndCommentNodeKeyword:
			return ContextILCommentNodeEnd
		case strings.HasPrefix(word, ILPrefix):
			return ContextILDefine
		}
	}

	if body, ok := cutAttributeOpener(line, style); ok {
		if il && strings.HasPrefix(strings.TrimSpace(body), ILAttributePrefix) {
			return ContextILAttribute
		}
		return ContextAttribute
	}

	switch word {
	case "{":
		return ContextMethodStart
	case "}":
		return ContextMethodEnd
	}
	return ContextNone
}

// firstToken returns line up to its first whitespace rune.
func firstToken(line string) string {
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i]
	}
	return line
}

// cutAttributeOpener strips the attribute opener of style from line.
// A C-style reader also accepts the C++11 double bracket.
func cutAttributeOpener(line string, style BracketStyle) (string, bool) {
	if body, ok := strings.CutPrefix(line, "[["); ok {
		return body, true
	}
	if style == BracketCPP11 {
		return "", false
	}
	return strings.CutPrefix(line, "[")
}
