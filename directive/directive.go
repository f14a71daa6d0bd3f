// Package directive extracts inline bracket directives from primitive blocks.
//
//	[note: text]          speaker notes, removed from the visible text
//	[stat: VALUE: LABEL]  a statistic, reclassified into a standalone stat block
//
// Malformed directives do not match and stay in the text untouched.
package directive

import (
	"regexp"
	"strings"

	"github.com/goosio/notedeck/token"
)

var (
	noteRe = regexp.MustCompile(`\[note:\s*([^\]]*?)\s*\]`)
	statRe = regexp.MustCompile(`\[stat:\s*([^:\]]+?)\s*:\s*([^\]]+?)\s*\]`)
)

// ExtractNotes removes every note directive from text and returns them in order.
func ExtractNotes(text string) (string, []string) {
	var notes []string
	for _, m := range noteRe.FindAllStringSubmatch(text, -1) {
		if n := strings.TrimSpace(m[1]); n != "" {
			notes = append(notes, n)
		}
	}
	if len(notes) == 0 && !noteRe.MatchString(text) {
		return text, nil
	}
	return tidy(noteRe.ReplaceAllString(text, "")), notes
}

// ExtractStats removes every stat directive from text and returns them in order.
func ExtractStats(text string) (string, []token.Stat) {
	matches := statRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, nil
	}
	stats := make([]token.Stat, 0, len(matches))
	for _, m := range matches {
		stats = append(stats, token.Stat{Value: m[1], Label: m[2]})
	}
	return tidy(statRe.ReplaceAllString(text, "")), stats
}

// Apply strips directives from every block. Stat directives become KindStat blocks placed
// where the directive was: a paragraph is replaced by its stats followed by any remaining
// text, other blocks are followed by their stats. A paragraph holding nothing but notes is
// kept with empty text so its notes can still be attached downstream.
func Apply(blocks []token.Block) []token.Block {
	out := make([]token.Block, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, apply(b)...)
	}
	return out
}

func apply(b token.Block) []token.Block {
	if b.Kind == token.KindCode {
		return []token.Block{b}
	}
	var (
		notes []string
		stats []token.Stat
	)
	strip := func(s string) string {
		s, n := ExtractNotes(s)
		notes = append(notes, n...)
		s, st := ExtractStats(s)
		stats = append(stats, st...)
		return s
	}
	b.Text = strip(b.Text)
	// HTML mirrors Text, so only keep what Text already reported.
	b.HTML = stripQuiet(b.HTML)
	if len(b.Items) > 0 {
		items := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			if item = strip(item); item != "" {
				items = append(items, item)
			}
		}
		b.Items = items
	}
	if len(notes) == 0 && len(stats) == 0 {
		return []token.Block{b}
	}
	b.Notes = append(b.Notes, notes...)

	statBlocks := make([]token.Block, 0, len(stats))
	for _, s := range stats {
		statBlocks = append(statBlocks, token.Block{Kind: token.KindStat, Stat: &s})
	}
	if b.Kind != token.KindParagraph {
		if b.Kind == token.KindList && len(b.Items) == 0 {
			if len(statBlocks) == 0 {
				return []token.Block{{Kind: token.KindParagraph, Notes: b.Notes}}
			}
			return carryNotes(statBlocks, b)
		}
		return append([]token.Block{b}, statBlocks...)
	}
	if b.Text == "" && len(statBlocks) > 0 {
		return carryNotes(statBlocks, b)
	}
	if len(statBlocks) > 0 {
		statBlocks[0].Notes = b.Notes
		b.Notes = nil
	}
	return append(statBlocks, b)
}

// carryNotes moves the notes of a block that vanished onto the first stat.
func carryNotes(stats []token.Block, b token.Block) []token.Block {
	stats[0].Notes = append(stats[0].Notes, b.Notes...)
	return stats
}

func stripQuiet(s string) string {
	if s == "" {
		return s
	}
	s = noteRe.ReplaceAllString(s, "")
	s = statRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func tidy(s string) string {
	if strings.Contains(s, "\n") {
		lines := strings.Split(s, "\n")
		kept := lines[:0]
		for _, l := range lines {
			if l = strings.Join(strings.Fields(l), " "); l != "" {
				kept = append(kept, l)
			}
		}
		return strings.Join(kept, "\n")
	}
	return strings.Join(strings.Fields(s), " ")
}
