// Package token turns an authored HTML fragment into an ordered list of primitive blocks.
//
// Two tokenizers produce the same primitives: ParseDOM walks a parsed element tree,
// ParseRegex carves element ranges out of the raw string. Everything downstream
// (directive extraction, case-study classification, slide grouping) works on []Block only,
// so for well-formed input both backends feed identical data to the same code.
package token

import (
	"strings"
)

// Kind is the primitive type of a block.
type Kind string

const (
	KindHeading1   Kind = "h1"
	KindHeading2   Kind = "h2"
	KindHeading3   Kind = "h3"
	KindLabel      Kind = "h4"
	KindParagraph  Kind = "paragraph"
	KindImage      Kind = "image"
	KindBlockquote Kind = "blockquote"
	KindList       Kind = "list"
	KindCode       Kind = "code"
	KindRule       Kind = "hr"
	KindInfoGrid   Kind = "info-grid"
	KindCallout    Kind = "callout"
	KindCardGrid   Kind = "card-grid"
	// KindStat is never produced by a tokenizer; directive extraction reclassifies into it.
	KindStat Kind = "stat"
)

// Block is one top-level element of the fragment.
type Block struct {
	Kind Kind `json:"kind"`
	// Text is whitespace-normalized plain text. Blockquotes keep one line per visual line,
	// code keeps its raw text.
	Text string `json:"text,omitempty"`
	// HTML is the raw inner markup (paragraph, list, callout, blockquote).
	HTML    string   `json:"html,omitempty"`
	Image   *Image   `json:"image,omitempty"`
	Items   []string `json:"items,omitempty"`
	Ordered bool     `json:"ordered,omitempty"`
	Variant string   `json:"variant,omitempty"`
	Pairs   []Pair   `json:"pairs,omitempty"`
	Cards   []Card   `json:"cards,omitempty"`
	Stat    *Stat    `json:"stat,omitempty"`
	Notes   []string `json:"notes,omitempty"`
}

// Image is an authored image, whatever wrapper it arrived in.
type Image struct {
	Src     string `json:"src"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	Layout  string `json:"layout,omitempty"`
}

// Pair is one dt/dd entry of an info grid.
type Pair struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Card is one [data-card] child of a card grid.
type Card struct {
	Icon        string `json:"icon,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Stat is a [stat: VALUE: LABEL] callout.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Custom block types accepted on div[data-block-type].
const (
	blockTypeInfoGrid = "info-grid"
	blockTypeCallout  = "callout"
	blockTypeCardGrid = "card-grid"
)

// Elements that break lines when flattening markup to text.
var blockTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "dd": {}, "div": {}, "dl": {},
	"dt": {}, "figcaption": {}, "figure": {}, "footer": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {},
	"h5": {}, "h6": {}, "header": {}, "hr": {}, "li": {}, "ol": {}, "p": {}, "pre": {},
	"section": {}, "table": {}, "tr": {}, "ul": {},
}

func isBlockTag(tag string) bool {
	_, ok := blockTags[tag]
	return ok
}

// normalize collapses every whitespace run to one space.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeLines normalizes each line and drops blank ones.
func normalizeLines(s string) string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = normalize(l); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

func trimCode(s string) string {
	return strings.Trim(s, "\r\n")
}
