package token

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

var (
	openTagRe = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)\b((?:[^>"']|"[^"]*"|'[^']*')*)>`)
	anyTagRe  = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)\b(?:[^>"']|"[^"]*"|'[^']*')*>`)
	attrRe    = regexp.MustCompile("([^\\s\"'>/=]+)(?:\\s*=\\s*(?:\"([^\"]*)\"|'([^']*)'|([^\\s\"'=<>`]+)))?")
	commentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	scriptRe  = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	styleRe   = regexp.MustCompile(`(?is)<style\b.*?</style\s*>`)
	brRe      = regexp.MustCompile(`(?i)<br\b[^>]*>`)
	hasImgRe  = regexp.MustCompile(`(?i)<img\b`)
)

var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {}, "input": {},
	"link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

// closeRes caches one open/close matcher per tag name.
var closeRes sync.Map

// element is one tag range carved out of a string.
type element struct {
	tag   string
	attrs map[string]string
	inner string
	start int
	open  int // end of the opening tag
	end   int
}

func (e element) attr(key string) string { return e.attrs[key] }

func (e element) hasAttr(key string) bool {
	_, ok := e.attrs[key]
	return ok
}

type regexBuilder func(e element) (Block, bool)

var regexBuilders map[string]regexBuilder

func init() {
	regexBuilders = map[string]regexBuilder{
		"h1":         regexHeading(KindHeading1),
		"h2":         regexHeading(KindHeading2),
		"h3":         regexHeading(KindHeading3),
		"h4":         regexHeading(KindLabel),
		"h5":         regexHeading(KindLabel),
		"h6":         regexHeading(KindLabel),
		"p":          regexParagraph,
		"img":        regexImage,
		"figure":     regexFigure,
		"picture":    regexFigure,
		"blockquote": regexBlockquote,
		"ul":         regexList,
		"ol":         regexList,
		"pre":        regexCode,
		"code":       regexCode,
		"hr":         regexRule,
		"div":        regexDiv,
	}
}

// ParseRegex tokenizes the top-level elements of an HTML fragment by string range
// extraction only. For well-formed fragments it yields the same blocks as ParseDOM,
// except for HTML, which keeps the authored markup verbatim.
func ParseRegex(src string) []Block {
	if strings.TrimSpace(src) == "" {
		return nil
	}
	src = stripComments(src)
	var blocks []Block
	for _, e := range topLevel(src) {
		if e.tag == "p" {
			if imgs := regexImageOnly(e); len(imgs) > 0 {
				blocks = append(blocks, imgs...)
				continue
			}
		}
		build, ok := regexBuilders[e.tag]
		if !ok {
			continue
		}
		if b, ok := build(e); ok {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

func regexHeading(kind Kind) regexBuilder {
	return func(e element) (Block, bool) {
		text := normalize(regexText(e.inner))
		if text == "" {
			return Block{}, false
		}
		return Block{Kind: kind, Text: text}, true
	}
}

// regexImageOnly mirrors domImageOnly.
func regexImageOnly(e element) []Block {
	if normalize(regexText(e.inner)) != "" {
		return nil
	}
	var blocks []Block
	walkElements(e.inner, func(c element) bool {
		if c.tag != "img" {
			return true
		}
		if b, ok := regexImage(c); ok {
			blocks = append(blocks, b)
		}
		return false
	})
	return blocks
}

func regexParagraph(e element) (Block, bool) {
	text := normalize(regexText(e.inner))
	if text == "" {
		return Block{}, false
	}
	return Block{Kind: KindParagraph, Text: text, HTML: strings.TrimSpace(e.inner)}, true
}

func regexImage(e element) (Block, bool) {
	img := &Image{
		Src:    strings.TrimSpace(e.attr("src")),
		Alt:    strings.TrimSpace(e.attr("alt")),
		Layout: e.attr("data-layout"),
	}
	if img.Src == "" {
		return Block{}, false
	}
	return Block{Kind: KindImage, Image: img}, true
}

func regexFigure(e element) (Block, bool) {
	img, ok := findElement(e.inner, func(c element) bool { return c.tag == "img" })
	if !ok {
		return regexParagraph(e)
	}
	b, ok := regexImage(img)
	if !ok {
		return Block{}, false
	}
	if caption, ok := findElement(e.inner, func(c element) bool { return c.tag == "figcaption" }); ok {
		b.Image.Caption = normalize(regexText(caption.inner))
	}
	if b.Image.Layout == "" {
		b.Image.Layout = e.attr("data-layout")
	}
	return b, true
}

func regexBlockquote(e element) (Block, bool) {
	text := normalizeLines(regexText(e.inner))
	if text == "" {
		return Block{}, false
	}
	return Block{Kind: KindBlockquote, Text: text, HTML: strings.TrimSpace(e.inner)}, true
}

func regexList(e element) (Block, bool) {
	var items []string
	for _, li := range topLevel(e.inner) {
		if li.tag != "li" {
			continue
		}
		if text := normalize(regexText(li.inner)); text != "" {
			items = append(items, text)
		}
	}
	if len(items) == 0 {
		return Block{}, false
	}
	return Block{
		Kind:    KindList,
		Items:   items,
		Ordered: e.tag == "ol",
		HTML:    strings.TrimSpace(e.inner),
	}, true
}

func regexCode(e element) (Block, bool) {
	inner := e.inner
	if e.tag != "code" {
		if code, ok := findElement(inner, func(c element) bool { return c.tag == "code" }); ok {
			inner = code.inner
		}
	}
	text := trimCode(regexRawText(inner))
	if strings.TrimSpace(text) == "" {
		return Block{}, false
	}
	return Block{Kind: KindCode, Text: text}, true
}

func regexRule(_ element) (Block, bool) {
	return Block{Kind: KindRule}, true
}

func regexDiv(e element) (Block, bool) {
	switch e.attr("data-block-type") {
	case blockTypeInfoGrid:
		return regexInfoGrid(e)
	case blockTypeCallout:
		text := normalize(regexText(e.inner))
		if text == "" {
			return Block{}, false
		}
		return Block{Kind: KindCallout, Text: text, HTML: strings.TrimSpace(e.inner), Variant: e.attr("data-variant")}, true
	case blockTypeCardGrid:
		return regexCardGrid(e)
	}
	if hasImgRe.MatchString(e.inner) {
		return regexFigure(e)
	}
	return regexParagraph(e)
}

func regexInfoGrid(e element) (Block, bool) {
	var (
		pairs []Pair
		label string
	)
	walkElements(e.inner, func(c element) bool {
		switch c.tag {
		case "dt":
			label = normalize(regexText(c.inner))
			return false
		case "dd":
			pairs = append(pairs, Pair{Label: label, Value: normalize(regexText(c.inner))})
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

func regexCardGrid(e element) (Block, bool) {
	var cards []Card
	walkElements(e.inner, func(c element) bool {
		if !c.hasAttr("data-card") {
			return true
		}
		card := Card{
			Icon:        regexCardField(c, "data-icon", "data-card-icon", nil),
			Title:       regexCardField(c, "data-title", "data-card-title", []string{"h3", "h4", "strong"}),
			Description: regexCardField(c, "data-description", "data-card-description", []string{"p"}),
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

func regexCardField(card element, attr, marker string, fallback []string) string {
	if v := strings.TrimSpace(card.attr(attr)); v != "" {
		return v
	}
	if c, ok := findElement(card.inner, func(c element) bool { return c.hasAttr(marker) }); ok {
		return normalize(regexText(c.inner))
	}
	if len(fallback) == 0 {
		return ""
	}
	c, ok := findElement(card.inner, func(c element) bool {
		for _, tag := range fallback {
			if c.tag == tag {
				return true
			}
		}
		return false
	})
	if !ok {
		return ""
	}
	return normalize(regexText(c.inner))
}

// topLevel returns the outermost elements of s in order, skipping over their contents.
func topLevel(s string) []element {
	var elements []element
	for pos := 0; pos < len(s); {
		e, ok := nextElement(s, pos)
		if !ok {
			break
		}
		elements = append(elements, e)
		pos = e.end
	}
	return elements
}

// walkElements visits elements of s in document order. Returning false skips the
// contents of the visited element.
func walkElements(s string, visit func(element) bool) {
	for pos := 0; pos < len(s); {
		e, ok := nextElement(s, pos)
		if !ok {
			return
		}
		if visit(e) {
			pos = e.open
			continue
		}
		pos = e.end
	}
}

// findElement returns the first element of s, in document order, matching fn.
func findElement(s string, fn func(element) bool) (element, bool) {
	var (
		found element
		ok    bool
	)
	walkElements(s, func(e element) bool {
		if ok {
			return false
		}
		if fn(e) {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// nextElement finds the first opening tag at or after pos and its matching close.
// An unclosed element runs to the end of s.
func nextElement(s string, pos int) (element, bool) {
	loc := openTagRe.FindStringSubmatchIndex(s[pos:])
	if loc == nil {
		return element{}, false
	}
	tag := strings.ToLower(s[pos+loc[2] : pos+loc[3]])
	rawAttrs := s[pos+loc[4] : pos+loc[5]]
	e := element{
		tag:   tag,
		attrs: parseAttrs(rawAttrs),
		start: pos + loc[0],
	}
	afterOpen := pos + loc[1]
	e.open = afterOpen
	if _, void := voidTags[tag]; void || strings.HasSuffix(strings.TrimSpace(rawAttrs), "/") {
		e.end = afterOpen
		return e, true
	}
	closeStart, closeEnd := matchClose(s, tag, afterOpen)
	e.inner = s[afterOpen:closeStart]
	e.end = closeEnd
	return e, true
}

// matchClose returns the range of the closing tag balancing an already opened tag.
func matchClose(s, tag string, from int) (int, int) {
	depth := 1
	for _, m := range tagMatcher(tag).FindAllStringSubmatchIndex(s[from:], -1) {
		closing := m[3] > m[2]
		if closing {
			depth--
			if depth == 0 {
				return from + m[0], from + m[1]
			}
			continue
		}
		if !strings.HasSuffix(s[from+m[0]:from+m[1]], "/>") {
			depth++
		}
	}
	return len(s), len(s)
}

func tagMatcher(tag string) *regexp.Regexp {
	if re, ok := closeRes.Load(tag); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`(?i)<(/?)` + regexp.QuoteMeta(tag) + `\b(?:[^>"']|"[^"]*"|'[^']*')*>`)
	closeRes.Store(tag, re)
	return re
}

func parseAttrs(s string) map[string]string {
	attrs := map[string]string{}
	for _, m := range attrRe.FindAllStringSubmatch(s, -1) {
		key := strings.ToLower(m[1])
		if _, dup := attrs[key]; dup {
			continue
		}
		var val string
		switch {
		case m[2] != "":
			val = m[2]
		case m[3] != "":
			val = m[3]
		default:
			val = m[4]
		}
		attrs[key] = html.UnescapeString(val)
	}
	return attrs
}

func stripComments(s string) string {
	s = commentRe.ReplaceAllString(s, "")
	s = scriptRe.ReplaceAllString(s, "")
	return styleRe.ReplaceAllString(s, "")
}

// regexText flattens markup to text, breaking lines around block elements and at br.
func regexText(s string) string {
	s = stripComments(s)
	s = anyTagRe.ReplaceAllStringFunc(s, func(m string) string {
		name := strings.ToLower(anyTagRe.FindStringSubmatch(m)[1])
		if name == "br" || isBlockTag(name) {
			return "\n"
		}
		return ""
	})
	return html.UnescapeString(s)
}

// regexRawText strips every tag, keeping only br as a line break.
func regexRawText(s string) string {
	s = stripComments(s)
	s = brRe.ReplaceAllString(s, "\n")
	s = anyTagRe.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}
