package exisl

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp is the kind of a line difference.
type DiffOp int8

const (
	DiffDelete DiffOp = -1
	DiffEqual  DiffOp = 0
	DiffInsert DiffOp = 1
)

// String returns the unified-diff prefix of the op.
func (op DiffOp) String() string {
	switch op {
	case DiffDelete:
		return "-"
	case DiffInsert:
		return "+"
	default:
		return " "
	}
}

// LineDiff is a run of lines that is equal, deleted from the first source
// or inserted by the second.
type LineDiff struct {
	Op    DiffOp
	Lines []string
}

// Diff compares from and to line by line.
func Diff(from, to string) []LineDiff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	out := make([]LineDiff, 0, len(diffs))
	for _, d := range diffs {
		var op DiffOp
		switch d.Type {
		case diffpatch.DiffInsert:
			op = DiffInsert
		case diffpatch.DiffDelete:
			op = DiffDelete
		default:
			op = DiffEqual
		}
		out = append(out, LineDiff{Op: op, Lines: splitLines(d.Text)})
	}
	return out
}

// HasChanges reports whether diffs contain an insertion or deletion.
func HasChanges(diffs []LineDiff) bool {
	for _, d := range diffs {
		if d.Op != DiffEqual {
			return true
		}
	}
	return false
}

// FormatDiff renders diffs with one prefixed line per source line.
func FormatDiff(diffs []LineDiff) string {
	var b strings.Builder
	for _, d := range diffs {
		for _, line := range d.Lines {
			b.WriteString(d.Op.String())
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// splitLines splits text into lines, dropping the empty tail after a final newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
