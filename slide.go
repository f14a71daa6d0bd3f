package notedeck

import (
	"fmt"
	"strings"
)

// Template is the renderer template of a slide.
type Template string

// Slide templates understood by the presentation renderer.
const (
	TemplateTitle     Template = "title"
	TemplateSection   Template = "section"
	TemplateContent   Template = "content"
	TemplateImage     Template = "image"
	TemplateImageText Template = "image-text"
	TemplateQuote     Template = "quote"
	TemplateList      Template = "list"
	TemplateStat      Template = "stat"
	TemplateEnd       Template = "end"
)

// Templates lists every slide template in deck order of appearance.
var Templates = []Template{
	TemplateTitle,
	TemplateSection,
	TemplateContent,
	TemplateImage,
	TemplateImageText,
	TemplateQuote,
	TemplateList,
	TemplateStat,
	TemplateEnd,
}

type Slides []*Slide

// Slide is one page of a presentation.
type Slide struct {
	ID           string       `json:"id"`
	Template     Template     `json:"template"`
	Content      SlideContent `json:"content"`
	SpeakerNotes string       `json:"speakerNotes,omitempty"`
}

// SlideContent holds the per-template fields. Only the fields a template uses are set.
type SlideContent struct {
	Heading     string   `json:"heading,omitempty"`
	Subheading  string   `json:"subheading,omitempty"`
	Body        string   `json:"body,omitempty"`
	Image       string   `json:"image,omitempty"`
	Caption     string   `json:"caption,omitempty"`
	Quote       string   `json:"quote,omitempty"`
	Attribution string   `json:"attribution,omitempty"`
	Items       []string `json:"items,omitempty"`
	StatValue   string   `json:"stat_value,omitempty"`
	StatLabel   string   `json:"stat_label,omitempty"`
	Author      string   `json:"author,omitempty"`
	Date        string   `json:"date,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// NoteInput is the note metadata and HTML content supplied by the caller.
// It is never modified.
type NoteInput struct {
	ID          string `json:"id" yaml:"id,omitempty"`
	Title       string `json:"title" yaml:"title"`
	Subtitle    string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Content     string `json:"content" yaml:"-"`
	Author      string `json:"author" yaml:"author,omitempty"`
	Username    string `json:"username" yaml:"username,omitempty"`
	Date        string `json:"date,omitempty" yaml:"date,omitempty"`
	HeaderImage string `json:"headerImage,omitempty" yaml:"headerImage,omitempty"`
}

// Templates returns the template of every slide in order.
func (s Slides) Templates() []Template { //nostyle:recvtype
	templates := make([]Template, 0, len(s))
	for _, slide := range s {
		templates = append(templates, slide.Template)
	}
	return templates
}

func (s Slides) String() string { //nostyle:recvtype
	var result strings.Builder
	for i, slide := range s {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(slide.String())
	}
	return result.String()
}

// String renders the slide as a plain text outline.
func (s *Slide) String() string {
	if s == nil {
		return ""
	}
	c := s.Content
	var result strings.Builder
	fmt.Fprintf(&result, "[%s]\n", s.Template)
	line := func(prefix, v string) {
		if v == "" {
			return
		}
		result.WriteString(prefix)
		result.WriteString(v)
		result.WriteString("\n")
	}
	line("# ", c.Heading)
	line("## ", c.Subheading)
	line("", c.Body)
	line("![image](", imageRef(c.Image, c.Caption))
	for _, l := range strings.Split(c.Quote, "\n") {
		line("> ", l)
	}
	line("> — ", c.Attribution)
	for _, item := range c.Items {
		line("- ", item)
	}
	if c.StatValue != "" {
		fmt.Fprintf(&result, "%s: %s\n", c.StatValue, c.StatLabel)
	}
	line("by ", c.Author)
	line("", c.Date)
	line("", c.URL)
	if s.SpeakerNotes != "" {
		line("<!-- ", s.SpeakerNotes+" -->")
	}
	return result.String()
}

func imageRef(src, caption string) string {
	if src == "" {
		return ""
	}
	if caption == "" {
		return src + ")"
	}
	return fmt.Sprintf("%s \"%s\")", src, caption)
}
