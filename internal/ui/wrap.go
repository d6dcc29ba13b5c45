package ui

import "strings"

// wrapLines splits s on newlines and breaks any line longer than width runes
// at spaces. Leading indentation is kept on continuation lines. Words longer
// than width are left whole.
func wrapLines(s string, width int) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if width <= 0 || len([]rune(line)) <= width {
			out = append(out, line)
			continue
		}
		trimmed := strings.TrimLeft(line, " ")
		indent := line[:len(line)-len(trimmed)]
		cur := indent
		for _, word := range strings.Fields(trimmed) {
			switch {
			case cur == indent:
				cur += word
			case len([]rune(cur))+1+len([]rune(word)) > width:
				out = append(out, cur)
				cur = indent + word
			default:
				cur += " " + word
			}
		}
		out = append(out, cur)
	}
	return out
}
