package notedeck

import (
	"slices"
)

// Equal reports whether both sequences hold the same slides. Slide ids are not compared
// since they are not stable across compiles.
func (s Slides) Equal(other Slides) bool { //nostyle:recvtype
	return slices.EqualFunc(s, other, func(a, b *Slide) bool {
		return a.Equal(b)
	})
}

// Equal reports whether both slides have the same template, content and speaker notes.
func (s *Slide) Equal(other *Slide) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Template == other.Template &&
		contentEqual(s.Content, other.Content) &&
		s.SpeakerNotes == other.SpeakerNotes
}

func contentEqual(a, b SlideContent) bool {
	return a.Heading == b.Heading &&
		a.Subheading == b.Subheading &&
		a.Body == b.Body &&
		a.Image == b.Image &&
		a.Caption == b.Caption &&
		a.Quote == b.Quote &&
		a.Attribution == b.Attribution &&
		slices.Equal(a.Items, b.Items) &&
		a.StatValue == b.StatValue &&
		a.StatLabel == b.StatLabel &&
		a.Author == b.Author &&
		a.Date == b.Date &&
		a.URL == b.URL
}

// Diverge returns the index of the first slide whose template differs between s and
// other, or -1 when both template sequences are identical.
func (s Slides) Diverge(other Slides) int { //nostyle:recvtype
	for i := range max(len(s), len(other)) {
		if i >= len(s) || i >= len(other) || s[i].Template != other[i].Template {
			return i
		}
	}
	return -1
}
