// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hlsl

import "strings"

// StripComments removes // and /* */ comments from line.
//
// inBlock tells whether line starts inside an unterminated block comment;
// the returned flag tells whether the line ends inside one. Comment markers
// inside "..." string literals are kept. A block comment in the middle of a
// line collapses to a single space together with the blanks around it.
func StripComments(line string, inBlock bool) (string, bool) {
	if !inBlock && !strings.ContainsRune(line, '/') {
		return line, false
	}

	var b strings.Builder
	b.Grow(len(line))
	inString := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		next := byte(0)
		if i+1 < len(line) {
			next = line[i+1]
		}

		if inBlock {
			if c == '*' && next == '/' {
				inBlock = false
				i++
				if s := b.String(); s != "" {
					if !isBlank(s[len(s)-1]) {
						b.WriteByte(' ')
					}
					for i+1 < len(line) && isBlank(line[i+1]) {
						i++
					}
				}
			}
			continue
		}

		if inString {
			b.WriteByte(c)
			switch c {
			case '\\':
				if next != 0 {
					b.WriteByte(next)
					i++
				}
			case '"':
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			b.WriteByte(c)
		case c == '/' && next == '/':
			return b.String(), false
		case c == '/' && next == '*':
			inBlock = true
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), inBlock
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
