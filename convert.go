// convert.go projects tokenized blocks onto the primitive set the slide grouper understands.
package notedeck

import (
	"github.com/goosio/notedeck/directive"
	"github.com/goosio/notedeck/token"
)

// primitives strips directives and folds the case-study only kinds into slide primitives:
// labels, code and callouts read as paragraphs, info and card grids read as lists.
func primitives(blocks []token.Block) []token.Block {
	blocks = directive.Apply(blocks)
	out := make([]token.Block, 0, len(blocks))
	for _, b := range blocks {
		switch b.Kind {
		case token.KindLabel, token.KindCode, token.KindCallout:
			out = append(out, token.Block{Kind: token.KindParagraph, Text: b.Text, Notes: b.Notes})
		case token.KindInfoGrid:
			items := make([]string, 0, len(b.Pairs))
			for _, p := range b.Pairs {
				items = append(items, joinNonEmpty(p.Label, p.Value))
			}
			out = append(out, token.Block{Kind: token.KindList, Items: items, Notes: b.Notes})
		case token.KindCardGrid:
			items := make([]string, 0, len(b.Cards))
			for _, card := range b.Cards {
				items = append(items, joinNonEmpty(card.Title, card.Description))
			}
			out = append(out, token.Block{Kind: token.KindList, Items: items, Notes: b.Notes})
		default:
			out = append(out, b)
		}
	}
	return out
}

func joinNonEmpty(label, value string) string {
	switch {
	case label == "":
		return value
	case value == "":
		return label
	}
	return label + ": " + value
}
