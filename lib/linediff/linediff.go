package linediff

import (
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

type Diff struct {
	Type  Operation
	Lines []string
}

type Operation int8

const (
	DiffDelete Operation = Operation(diffmatchpatch.DiffDelete)
	DiffInsert Operation = Operation(diffmatchpatch.DiffInsert)
	DiffEqual  Operation = Operation(diffmatchpatch.DiffEqual)
)

func (o Operation) Prefix() string {
	switch o {
	case DiffDelete:
		return "- "
	case DiffInsert:
		return "+ "
	default:
		return "  "
	}
}

func Do(src, dst string) []Diff {
	return DoWithTimeout(src, dst, time.Second)
}

func DoWithTimeout(src, dst string, timeout time.Duration) []Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = timeout
	wSrc, wDst, lines := textsToLineIndexes(src, dst)
	dmpd := dmp.DiffMainRunes(wSrc, wDst, false)
	return lineIndexesToDiff(dmpd, lines)
}

// Format renders the diff with one line per row, prefixed by its operation. Equal lines are only kept
// when they are at most context lines away from a change.
func Format(diffs []Diff, context int) string {
	sb := strings.Builder{}

	for i, d := range diffs {
		lines := d.Lines

		if d.Type == DiffEqual && context >= 0 {
			lines = trimContext(lines, context, i > 0, i < len(diffs)-1)
		}

		for _, line := range lines {
			sb.WriteString(d.Type.Prefix())
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func trimContext(lines []string, context int, hasBefore, hasAfter bool) []string {
	switch {
	case hasBefore && hasAfter:
		if len(lines) <= 2*context {
			return lines
		}
		result := append([]string{}, lines[:context]...)
		result = append(result, "...\n")
		return append(result, lines[len(lines)-context:]...)
	case hasBefore:
		return lines[:min(context, len(lines))]
	case hasAfter:
		return lines[max(0, len(lines)-context):]
	default:
		return nil
	}
}

func lineIndexesToDiff(diffs []diffmatchpatch.Diff, lines []string) []Diff {
	hydrated := make([]Diff, 0, len(diffs))
	for _, aDiff := range diffs {
		ls := make([]string, 0, len(aDiff.Text))
		for _, r := range aDiff.Text {
			ls = append(ls, lines[r])
		}

		hydrated = append(hydrated, Diff{
			Type:  Operation(aDiff.Type),
			Lines: ls,
		})
	}
	return hydrated
}

func textsToLineIndexes(text1, text2 string) ([]rune, []rune, []string) {
	lineToIndex := make(map[string]int)
	var lines []string
	indexes1 := textToLineIndexes(text1, lineToIndex, &lines)
	indexes2 := textToLineIndexes(text2, lineToIndex, &lines)
	return indexes1, indexes2, lines
}

func textToLineIndexes(text string, lineToIndex map[string]int, lines *[]string) []rune {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	split := strings.SplitAfter(text, "\n")
	split = split[:len(split)-1]

	result := make([]rune, len(split))
	for i, line := range split {
		lineValue, ok := lineToIndex[line]

		if !ok {
			lineValue = len(*lines)
			lineToIndex[line] = lineValue
			*lines = append(*lines, line)
		}

		result[i] = rune(lineValue)
	}
	return result
}
