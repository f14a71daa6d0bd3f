package notedeck

import (
	"strings"
)

var attributionDashes = []string{"—", "–", "-"}

// splitAttribution scans the quote lines from the end for the first line starting with a
// dash. That line, minus the dash, is the attribution and everything above it the quote.
// Lines below the attribution line qualify it ("Jane Doe, CEO"). Without such a line, or
// when nothing is left above it, the whole text is the quote.
func splitAttribution(text string) (quote, attribution string) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i := len(lines) - 1; i > 0; i-- {
		line := strings.TrimSpace(lines[i])
		dash, ok := attributionDash(line)
		if !ok {
			continue
		}
		var parts []string
		if name := strings.TrimSpace(strings.TrimPrefix(line, dash)); name != "" {
			parts = append(parts, name)
		}
		for _, rest := range lines[i+1:] {
			if rest = strings.TrimSpace(rest); rest != "" {
				parts = append(parts, rest)
			}
		}
		attribution = strings.Join(parts, ", ")
		if attribution == "" {
			break
		}
		return strings.TrimSpace(strings.Join(lines[:i], "\n")), attribution
	}
	return strings.TrimSpace(text), ""
}

func attributionDash(line string) (string, bool) {
	for _, d := range attributionDashes {
		if strings.HasPrefix(line, d) {
			return d, true
		}
	}
	return "", false
}

func (g *grouper) quote(text string, notes []string) {
	quote, attribution := splitAttribution(text)
	g.add(TemplateQuote, SlideContent{Quote: quote, Attribution: attribution}, notes)
}
