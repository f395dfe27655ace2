package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize canonicalizes text before comparison. Line endings are always
// folded to "\n"; each line is trimmed when IgnoreWhitespace is set and the
// whole text is lowercased when IgnoreCase is set.
//
// A step that fails leaves the text as it was before that step and the
// remaining steps still run.
func Normalize(text string, opts ComparisonOptions) string {
	text = applyStep(text, FoldLineEndings)
	if opts.IgnoreWhitespace {
		text = applyStep(text, trimLines)
	}
	if opts.IgnoreCase {
		text = applyStep(text, foldCase)
	}
	return text
}

// FoldLineEndings replaces "\r\n" and lone "\r" with "\n".
func FoldLineEndings(text string) string {
	return lineEndings.Replace(text)
}

// LineCount returns the number of lines in text after folding line endings.
// Empty text has no lines.
func LineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(FoldLineEndings(text), "\n") + 1
}

// SplitLines splits text on "\n" after folding line endings. Empty text
// yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(FoldLineEndings(text), "\n")
}

func trimLines(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func foldCase(text string) string {
	// Casers keep state between calls, so each call gets its own.
	return cases.Lower(language.Und).String(text)
}

func applyStep(text string, step func(string) string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = text
		}
	}()
	return step(text)
}
