package ui

import "strings"

// wrapText breaks text into lines no wider than maxWidth according to
// measure. Explicit newlines are kept. A single word wider than maxWidth
// gets a line of its own.
func wrapText(text string, maxWidth float32, measure func(string) float32) []string {
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}
