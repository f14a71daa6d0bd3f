package notedeck

import (
	"strings"

	"github.com/goosio/notedeck/chunk"
	"github.com/goosio/notedeck/token"
)

// grouper turns one primitive block sequence into a bracketed slide sequence.
type grouper struct {
	c      *Compiler
	note   *NoteInput
	blocks []token.Block
	slides Slides
	// index of the paragraph used as the title subheading, -1 when none
	lead int
}

func newGrouper(c *Compiler, note *NoteInput, blocks []token.Block) *grouper {
	return &grouper{
		c:      c,
		note:   note,
		blocks: blocks,
		lead:   -1,
	}
}

func (g *grouper) run() Slides {
	g.title()
	for i := 0; i < len(g.blocks); {
		b := g.blocks[i]
		switch b.Kind {
		case token.KindHeading1:
			g.add(TemplateSection, SlideContent{Heading: b.Text}, b.Notes)
			i++
		case token.KindHeading2, token.KindHeading3:
			end := g.groupEnd(i)
			g.group(b, g.blocks[i+1:end])
			i = end
		default:
			if i != g.lead {
				g.standalone(b)
			}
			i++
		}
	}
	g.end()
	return g.slides
}

func (g *grouper) title() {
	content := SlideContent{
		Heading: g.note.Title,
		Author:  g.note.Author,
		Date:    g.note.Date,
		Image:   g.note.HeaderImage,
	}
	var notes []string
	switch {
	case g.note.Subtitle != "":
		content.Subheading = g.note.Subtitle
	default:
		if i := g.leadParagraph(); i >= 0 {
			content.Subheading = g.blocks[i].Text
			// A paragraph owned by a heading also stays in its section.
			if !g.owned(i) {
				g.lead = i
				notes = g.blocks[i].Notes
			}
		}
	}
	g.add(TemplateTitle, content, notes)
}

// leadParagraph returns the index of the first non-empty paragraph when it is short
// enough to serve as a subheading. A longer one is left in the body.
func (g *grouper) leadParagraph() int {
	for i, b := range g.blocks {
		if b.Kind != token.KindParagraph || b.Text == "" {
			continue
		}
		if chunk.CountWords(b.Text) <= g.c.subtitleMaxWords {
			return i
		}
		return -1
	}
	return -1
}

// owned reports whether the block at i belongs to a preceding h2 or h3 section.
func (g *grouper) owned(i int) bool {
	for j := range i {
		switch g.blocks[j].Kind {
		case token.KindHeading2, token.KindHeading3:
			if g.groupEnd(j) > i {
				return true
			}
		}
	}
	return false
}

func (g *grouper) end() {
	content := SlideContent{Author: g.note.Author}
	if g.note.Username != "" {
		content.URL = g.note.Username + "." + g.c.domain
	}
	g.add(TemplateEnd, content, nil)
}

// groupEnd returns the index of the first block after the heading at i that the heading
// does not own. Rules and h1/h2 end a section, an h3 section also ends at the next h3.
func (g *grouper) groupEnd(i int) int {
	opener := g.blocks[i].Kind
	for j := i + 1; j < len(g.blocks); j++ {
		switch g.blocks[j].Kind {
		case token.KindHeading1, token.KindHeading2, token.KindRule:
			return j
		case token.KindHeading3:
			if opener == token.KindHeading3 {
				return j
			}
		}
	}
	return len(g.blocks)
}

// group classifies a heading and the blocks it owns, in priority order:
// list, image-text, content, bare section. Quotes, stats and unused images follow the
// section's slides in document order.
func (g *grouper) group(heading token.Block, members []token.Block) {
	var (
		paragraphs []string
		items      []string
		images     []*token.Image
		notes      = heading.Notes
	)
	for _, m := range members {
		switch m.Kind {
		case token.KindParagraph, token.KindHeading3:
			if m.Text != "" {
				paragraphs = append(paragraphs, m.Text)
			}
		case token.KindList:
			items = append(items, m.Items...)
		case token.KindImage:
			images = append(images, m.Image)
		case token.KindBlockquote, token.KindStat:
			continue
		}
		notes = append(notes[:len(notes):len(notes)], m.Notes...)
	}
	body := strings.Join(paragraphs, " ")
	words := chunk.CountWords(body)

	var used *token.Image
	switch {
	case len(items) > 0:
		g.listSlides(heading.Text, items, notes, body)
	case len(images) > 0 && words < g.c.imageTextMaxWords:
		used = images[0]
		g.add(TemplateImageText, SlideContent{
			Heading: heading.Text,
			Image:   used.Src,
			Caption: imageCaption(used),
			Body:    body,
		}, notes)
	case words > 0:
		g.contentSlides(heading.Text, body, notes)
	default:
		g.add(TemplateSection, SlideContent{Heading: heading.Text}, notes)
	}
	for _, m := range members {
		switch m.Kind {
		case token.KindImage:
			if m.Image != used {
				g.image(m.Image, nil)
			}
		case token.KindBlockquote, token.KindStat:
			g.standalone(m)
		}
	}
	g.c.logger.Debug("grouped section", "heading", heading.Text, "blocks", len(members), "words", words, "items", len(items), "images", len(images))
}

// standalone handles a block no heading owns.
func (g *grouper) standalone(b token.Block) {
	switch b.Kind {
	case token.KindImage:
		g.image(b.Image, b.Notes)
	case token.KindBlockquote:
		g.quote(b.Text, b.Notes)
	case token.KindStat:
		g.add(TemplateStat, SlideContent{StatValue: b.Stat.Value, StatLabel: b.Stat.Label}, b.Notes)
	case token.KindList:
		g.listSlides("", b.Items, b.Notes, "")
	case token.KindParagraph:
		if b.Text == "" {
			g.attachNotes(b.Notes)
			return
		}
		g.contentSlides("", b.Text, b.Notes)
	case token.KindRule:
		g.attachNotes(b.Notes)
	}
}

func (g *grouper) image(img *token.Image, notes []string) {
	g.add(TemplateImage, SlideContent{Image: img.Src, Caption: imageCaption(img)}, notes)
}

// imageCaption prefers the alt text and falls back to the figure caption.
func imageCaption(img *token.Image) string {
	if img.Alt != "" {
		return img.Alt
	}
	return img.Caption
}

// attachNotes adds notes of a block that emits no slide to the previous slide.
func (g *grouper) attachNotes(notes []string) {
	if len(notes) == 0 || len(g.slides) == 0 {
		return
	}
	last := g.slides[len(g.slides)-1]
	last.SpeakerNotes = joinNotes(last.SpeakerNotes, notes)
}

func (g *grouper) add(template Template, content SlideContent, notes []string) {
	g.slides = append(g.slides, &Slide{
		ID:           g.c.newID(),
		Template:     template,
		Content:      content,
		SpeakerNotes: joinNotes("", notes),
	})
	g.c.logger.Debug("added slide", "template", template)
}

func joinNotes(existing string, notes []string) string {
	all := make([]string, 0, len(notes)+1)
	if existing != "" {
		all = append(all, existing)
	}
	all = append(all, notes...)
	return strings.Join(all, "\n")
}
