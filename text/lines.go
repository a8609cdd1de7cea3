package text

import "strings"

// SplitLines splits text on explicit line breaks ("\r\n", "\r" or "\n").
// These are the only break opportunities: long lines are trimmed, never
// wrapped. Empty text yields no lines; a trailing break yields a trailing
// empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
