package notedeck

import (
	"testing"
)

func TestSlideString(t *testing.T) {
	tests := []struct {
		name     string
		slide    *Slide
		expected string
	}{
		{
			name:     "nil slide",
			slide:    nil,
			expected: "",
		},
		{
			name: "title slide",
			slide: &Slide{
				Template: TemplateTitle,
				Content:  SlideContent{Heading: "Deck", Subheading: "Sub", Author: "Jane", Date: "2024-05-01"},
			},
			expected: "[title]\n# Deck\n## Sub\nby Jane\n2024-05-01\n",
		},
		{
			name: "image with caption",
			slide: &Slide{
				Template: TemplateImageText,
				Content:  SlideContent{Heading: "Shot", Image: "a.png", Caption: "Alt", Body: "Text"},
			},
			expected: "[image-text]\n# Shot\nText\n![image](a.png \"Alt\")\n",
		},
		{
			name: "quote with notes",
			slide: &Slide{
				Template:     TemplateQuote,
				Content:      SlideContent{Quote: "One\nTwo", Attribution: "Jane"},
				SpeakerNotes: "pause",
			},
			expected: "[quote]\n> One\n> Two\n> — Jane\n<!-- pause -->\n",
		},
		{
			name: "list",
			slide: &Slide{
				Template: TemplateList,
				Content:  SlideContent{Heading: "Steps", Items: []string{"a", "b"}},
			},
			expected: "[list]\n# Steps\n- a\n- b\n",
		},
		{
			name: "stat",
			slide: &Slide{
				Template: TemplateStat,
				Content:  SlideContent{StatValue: "42%", StatLabel: "conversion lift"},
			},
			expected: "[stat]\n42%: conversion lift\n",
		},
		{
			name: "end",
			slide: &Slide{
				Template: TemplateEnd,
				Content:  SlideContent{Author: "Jane", URL: "jane.goos.io"},
			},
			expected: "[end]\nby Jane\njane.goos.io\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slide.String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSlidesString(t *testing.T) {
	s := Slides{
		{Template: TemplateTitle, Content: SlideContent{Heading: "Deck"}},
		{Template: TemplateEnd},
	}
	expected := "[title]\n# Deck\n\n[end]\n"
	if got := s.String(); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}
