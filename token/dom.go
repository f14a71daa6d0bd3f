package token

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type domBuilder func(n *html.Node) (Block, bool)

var domBuilders map[atom.Atom]domBuilder

func init() {
	domBuilders = map[atom.Atom]domBuilder{
		atom.H1:         domHeading(KindHeading1),
		atom.H2:         domHeading(KindHeading2),
		atom.H3:         domHeading(KindHeading3),
		atom.H4:         domHeading(KindLabel),
		atom.H5:         domHeading(KindLabel),
		atom.H6:         domHeading(KindLabel),
		atom.P:          domParagraph,
		atom.Img:        domImage,
		atom.Figure:     domFigure,
		atom.Picture:    domFigure,
		atom.Blockquote: domBlockquote,
		atom.Ul:         domList,
		atom.Ol:         domList,
		atom.Pre:        domCode,
		atom.Code:       domCode,
		atom.Hr:         domRule,
		atom.Div:        domDiv,
	}
}

// ParseDOM tokenizes the top-level elements of an HTML fragment using a parsed element tree.
// Unknown top-level elements and bare text are ignored. It never fails: unparsable input
// yields no blocks.
func ParseDOM(src string) []Block {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil
	}
	var blocks []Block
	for _, n := range nodes {
		if n.Type != html.ElementNode {
			continue
		}
		if n.DataAtom == atom.P {
			if imgs := domImageOnly(n); len(imgs) > 0 {
				blocks = append(blocks, imgs...)
				continue
			}
		}
		build, ok := domBuilders[n.DataAtom]
		if !ok {
			continue
		}
		if b, ok := build(n); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func domHeading(kind Kind) domBuilder {
	return func(n *html.Node) (Block, bool) {
		text := normalize(domText(n))
		if text == "" {
			return Block{}, false
		}
		return Block{Kind: kind, Text: text}, true
	}
}

func domParagraph(n *html.Node) (Block, bool) {
	text := normalize(domText(n))
	if text == "" {
		return Block{}, false
	}
	return Block{Kind: KindParagraph, Text: text, HTML: domInner(n)}, true
}

func domImage(n *html.Node) (Block, bool) {
	img := domImageData(n)
	if img.Src == "" {
		return Block{}, false
	}
	return Block{Kind: KindImage, Image: img}, true
}

// domFigure handles figure and picture: the first img wins, figcaption becomes the caption.
func domFigure(n *html.Node) (Block, bool) {
	img := domFind(n, func(c *html.Node) bool { return c.DataAtom == atom.Img })
	if img == nil {
		return domParagraph(n)
	}
	b, ok := domImage(img)
	if !ok {
		return Block{}, false
	}
	if caption := domFind(n, func(c *html.Node) bool { return c.DataAtom == atom.Figcaption }); caption != nil {
		b.Image.Caption = normalize(domText(caption))
	}
	if b.Image.Layout == "" {
		b.Image.Layout = domAttr(n, "data-layout")
	}
	return b, true
}

func domBlockquote(n *html.Node) (Block, bool) {
	text := normalizeLines(domText(n))
	if text == "" {
		return Block{}, false
	}
	return Block{Kind: KindBlockquote, Text: text, HTML: domInner(n)}, true
}

func domList(n *html.Node) (Block, bool) {
	var items []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.DataAtom != atom.Li {
			continue
		}
		if text := normalize(domText(c)); text != "" {
			items = append(items, text)
		}
	}
	if len(items) == 0 {
		return Block{}, false
	}
	return Block{
		Kind:    KindList,
		Items:   items,
		Ordered: n.DataAtom == atom.Ol,
		HTML:    domInner(n),
	}, true
}

func domCode(n *html.Node) (Block, bool) {
	src := n
	if n.DataAtom != atom.Code {
		if code := domFind(n, func(c *html.Node) bool { return c.DataAtom == atom.Code }); code != nil {
			src = code
		}
	}
	text := trimCode(domRawText(src))
	if strings.TrimSpace(text) == "" {
		return Block{}, false
	}
	return Block{Kind: KindCode, Text: text}, true
}

func domRule(_ *html.Node) (Block, bool) {
	return Block{Kind: KindRule}, true
}

func domDiv(n *html.Node) (Block, bool) {
	switch domAttr(n, "data-block-type") {
	case blockTypeInfoGrid:
		return domInfoGrid(n)
	case blockTypeCallout:
		text := normalize(domText(n))
		if text == "" {
			return Block{}, false
		}
		return Block{Kind: KindCallout, Text: text, HTML: domInner(n), Variant: domAttr(n, "data-variant")}, true
	case blockTypeCardGrid:
		return domCardGrid(n)
	}
	if img := domFind(n, func(c *html.Node) bool { return c.DataAtom == atom.Img }); img != nil {
		return domFigure(n)
	}
	return domParagraph(n)
}

func domInfoGrid(n *html.Node) (Block, bool) {
	var (
		pairs []Pair
		label string
	)
	domWalk(n, func(c *html.Node) bool {
		switch c.DataAtom {
		case atom.Dt:
			label = normalize(domText(c))
			return false
		case atom.Dd:
			pairs = append(pairs, Pair{Label: label, Value: normalize(domText(c))})
			label = ""
			return false
		}
		return true
	})
	if len(pairs) == 0 {
		return Block{}, false
	}
	return Block{Kind: KindInfoGrid, Pairs: pairs}, true
}

func domCardGrid(n *html.Node) (Block, bool) {
	var cards []Card
	domWalk(n, func(c *html.Node) bool {
		if !domHasAttr(c, "data-card") {
			return true
		}
		card := Card{
			Icon:        domCardField(c, "data-icon", "data-card-icon", nil),
			Title:       domCardField(c, "data-title", "data-card-title", []atom.Atom{atom.H3, atom.H4, atom.Strong}),
			Description: domCardField(c, "data-description", "data-card-description", []atom.Atom{atom.P}),
		}
		if card.Title != "" || card.Description != "" {
			cards = append(cards, card)
		}
		return false
	})
	if len(cards) == 0 {
		return Block{}, false
	}
	return Block{Kind: KindCardGrid, Cards: cards}, true
}

// domCardField resolves a card field from its attribute, a marked child, then the first
// child with one of the fallback tags.
func domCardField(card *html.Node, attr, marker string, fallback []atom.Atom) string {
	if v := strings.TrimSpace(domAttr(card, attr)); v != "" {
		return v
	}
	if c := domFind(card, func(c *html.Node) bool { return domHasAttr(c, marker) }); c != nil {
		return normalize(domText(c))
	}
	if len(fallback) == 0 {
		return ""
	}
	c := domFind(card, func(c *html.Node) bool {
		for _, a := range fallback {
			if c.DataAtom == a {
				return true
			}
		}
		return false
	})
	if c == nil {
		return ""
	}
	return normalize(domText(c))
}

// domImageOnly returns an image block for every img of n, at any depth, when n has no
// text of its own. Editors wrap images in links and pad them with &nbsp;.
func domImageOnly(n *html.Node) []Block {
	if normalize(domText(n)) != "" {
		return nil
	}
	var blocks []Block
	domWalk(n, func(c *html.Node) bool {
		if c.DataAtom != atom.Img {
			return true
		}
		if b, ok := domImage(c); ok {
			blocks = append(blocks, b)
		}
		return false
	})
	return blocks
}

func domImageData(n *html.Node) *Image {
	return &Image{
		Src:    strings.TrimSpace(domAttr(n, "src")),
		Alt:    strings.TrimSpace(domAttr(n, "alt")),
		Layout: domAttr(n, "data-layout"),
	}
}

func domAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func domHasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

// domWalk visits element descendants of n in document order. Returning false skips the
// children of the visited node.
func domWalk(n *html.Node, visit func(*html.Node) bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if visit(c) {
			domWalk(c, visit)
		}
	}
}

// domFind returns the first element descendant of n matching fn.
func domFind(n *html.Node, fn func(*html.Node) bool) *html.Node {
	var found *html.Node
	domWalk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if fn(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// domText flattens n to text, breaking lines around block elements and at br.
func domText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				switch {
				case c.DataAtom == atom.Br:
					sb.WriteByte('\n')
				case c.DataAtom == atom.Script || c.DataAtom == atom.Style:
				case isBlockTag(c.Data):
					sb.WriteByte('\n')
					walk(c)
					sb.WriteByte('\n')
				default:
					walk(c)
				}
			}
		}
	}
	walk(n)
	return sb.String()
}

// domRawText concatenates text nodes only.
func domRawText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				sb.WriteString(c.Data)
			case html.ElementNode:
				if c.DataAtom == atom.Br {
					sb.WriteByte('\n')
					continue
				}
				walk(c)
			}
		}
	}
	walk(n)
	return sb.String()
}

func domInner(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return strings.TrimSpace(buf.String())
}
