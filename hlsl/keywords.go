// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

// Base-language directives and modifiers.
const (
	KeywordPragma  = "#pragma"
	KeywordDefine  = "#define"
	KeywordUndef   = "#undef"
	KeywordIf      = "#if"
	KeywordIfDef   = "#ifdef"
	KeywordIfNDef  = "#ifndef"
	KeywordEndIf   = "#endif"
	KeywordInclude = "#include"

	KeywordStatic = "static"
	KeywordConst  = "const"
	KeywordReturn = "return"
)

// EXISL vocabulary.
const (
	// ILMarker is the first line of every IL document.
	ILMarker = "#EXISL"

	// ILPrefix starts every IL declaration line.
	ILPrefix = "@IL."

	ILNodeKeyword           = ILPrefix + "Node"
	ILEndNodeKeyword        = ILPrefix + "EndNode"
	ILCommentNodeKeyword    = ILPrefix + "CommentNode"
	ILEndCommentNodeKeyword = ILPrefix + "EndCommentNode"

	// ILVersionName is the IL define carrying the tool version.
	ILVersionName = "ILVersion"

	// ILAttributePrefix starts the name of every IL attribute.
	ILAttributePrefix = "IL."

	// ILPropertiesAttribute carries node position and scale.
	ILPropertiesAttribute = ILAttributePrefix + "Properties"

	// DefaultPrologueComment follows the IL marker in new documents.
	DefaultPrologueComment = "EXISL intermediate shader source, edit with care"
)

// statementKeywords are words that start statements and therefore can never
// be a method name or return type in a header line.
var statementKeywords = map[string]struct{}{
	"break":     {},
	"case":      {},
	"cbuffer":   {},
	"continue":  {},
	"default":   {},
	"discard":   {},
	"do":        {},
	"else":      {},
	"for":       {},
	"if":        {},
	"namespace": {},
	"return":    {},
	"struct":    {},
	"switch":    {},
	"tbuffer":   {},
	"typedef":   {},
	"while":     {},
}

// IsStatementKeyword reports whether word starts a statement in the base language.
func IsStatementKeyword(word string) bool {
	_, ok := statementKeywords[word]
	return ok
}
