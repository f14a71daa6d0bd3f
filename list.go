package notedeck

import (
	"slices"

	"github.com/goosio/notedeck/chunk"
)

// continued returns the heading of the i-th chunk of a split slide.
func continued(heading string, i int) string {
	if heading == "" || i == 0 {
		return heading
	}
	return heading + " (continued)"
}

// listSlides emits one list slide per maxItems items. Only the first chunk carries the
// speaker notes and the body text of the section.
func (g *grouper) listSlides(heading string, items []string, notes []string, body string) {
	chunks := chunk.SplitList(items, g.c.maxItems)
	for i, part := range chunks {
		content := SlideContent{
			Heading: continued(heading, i),
			Items:   slices.Clone(part),
		}
		var n []string
		if i == 0 {
			content.Body = body
			n = notes
		}
		g.add(TemplateList, content, n)
	}
	if len(chunks) > 1 {
		g.c.logger.Debug("chunked list", "heading", heading, "items", len(items), "slides", len(chunks))
	}
}

// contentSlides emits one content slide per maxWords words.
func (g *grouper) contentSlides(heading, text string, notes []string) {
	chunks := chunk.SplitText(text, g.c.maxWords)
	for i, part := range chunks {
		var n []string
		if i == 0 {
			n = notes
		}
		g.add(TemplateContent, SlideContent{Heading: continued(heading, i), Body: part}, n)
	}
	if len(chunks) > 1 {
		g.c.logger.Debug("chunked text", "heading", heading, "slides", len(chunks))
	}
}
