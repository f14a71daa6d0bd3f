package casestudy

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/goosio/notedeck/config"
	"github.com/goosio/notedeck/directive"
	"github.com/goosio/notedeck/idgen"
	"github.com/goosio/notedeck/slug"
	"github.com/goosio/notedeck/token"
	"github.com/k1LoW/errors"
)

// Parser classifies primitive blocks into content blocks. It is immutable after New and
// safe for concurrent use.
type Parser struct {
	imageLayout string
	newID       idgen.Generator
	logger      *slog.Logger
}

type Option func(*Parser) error

// WithLogger sets the logger receiving debug records about classification.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) error {
		p.logger = logger
		return nil
	}
}

// WithIDGenerator sets the content block id strategy.
func WithIDGenerator(gen idgen.Generator) Option {
	return func(p *Parser) error {
		p.newID = gen
		return nil
	}
}

// WithImageLayout sets the layout of images that do not declare data-layout.
func WithImageLayout(layout string) Option {
	return func(p *Parser) error {
		switch layout {
		case "":
		case LayoutFullWidth, LayoutContentWidth:
			p.imageLayout = layout
		default:
			return fmt.Errorf("invalid image layout: %s", layout)
		}
		return nil
	}
}

// WithConfig applies a loaded configuration.
func WithConfig(cfg *config.Config) Option {
	return func(p *Parser) error {
		if cfg == nil {
			return nil
		}
		return WithImageLayout(cfg.ImageLayout)(p)
	}
}

// New creates a new Parser.
func New(opts ...Option) (_ *Parser, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	p := newParser()
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func newParser() *Parser {
	return &Parser{
		imageLayout: LayoutContentWidth,
		newID:       idgen.UUID(),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Parse classifies an HTML fragment. A non-empty headerImage is used as the hero image,
// otherwise the first authored image is promoted to it. Parse never fails: options that
// cannot be applied are logged and the defaults are used.
func Parse(src, headerImage string, opts ...Option) *ParsedCaseStudy {
	p, err := New(opts...)
	if err != nil {
		p = newParser()
		p.logger = slog.Default()
		p.logger.Warn("failed to apply options, using defaults", "error", err)
	}
	return p.Parse(src, headerImage)
}

// Parse classifies an HTML fragment tokenized with an element tree.
func (p *Parser) Parse(src, headerImage string) *ParsedCaseStudy {
	c := &classification{
		p:      p,
		result: newParsedCaseStudy(headerImage),
		slugs:  &slug.Registry{},
	}
	for _, b := range directive.Apply(token.ParseDOM(src)) {
		classify, ok := classifiers[b.Kind]
		if !ok || (b.Kind == token.KindParagraph && b.Text == "") {
			continue
		}
		if b.Kind != token.KindImage {
			c.flush()
		}
		classify(c, b)
	}
	c.flush()
	p.logger.Debug("compiled case study", "blocks", len(c.result.ContentBlocks), "sections", len(c.result.TableOfContents))
	return c.result
}

// classification is the state of one Parse call.
type classification struct {
	p       *Parser
	result  *ParsedCaseStudy
	slugs   *slug.Registry
	pending []ImageData
	lead    bool
}

type classifier func(c *classification, b token.Block)

var classifiers map[token.Kind]classifier

func init() {
	classifiers = map[token.Kind]classifier{
		token.KindHeading1:   heading(TypeHeading1, 1),
		token.KindHeading2:   heading(TypeHeading2, 2),
		token.KindHeading3:   heading(TypeHeading3, 3),
		token.KindLabel:      textBlock(TypeSectionLabel),
		token.KindParagraph:  paragraph,
		token.KindImage:      image,
		token.KindBlockquote: textBlock(TypeQuote),
		token.KindList:       list,
		token.KindCode:       textBlock(TypeCode),
		token.KindRule:       divider,
		token.KindInfoGrid:   infoGrid,
		token.KindCallout:    callout,
		token.KindCardGrid:   cardGrid,
		token.KindStat:       stat,
	}
}

func heading(t BlockType, level int) classifier {
	return func(c *classification, b token.Block) {
		if b.Text == "" {
			return
		}
		block := ContentBlock{Type: t, Content: Text(b.Text), Level: level}
		if t == TypeHeading2 {
			id := c.slugs.Unique(b.Text)
			c.result.TableOfContents = append(c.result.TableOfContents, TableOfContentsEntry{ID: id, Title: b.Text})
			block.SectionID = id
		}
		c.add(block)
	}
}

func textBlock(t BlockType) classifier {
	return func(c *classification, b token.Block) {
		if b.Text == "" {
			return
		}
		c.add(ContentBlock{Type: t, Content: Text(b.Text)})
	}
}

func paragraph(c *classification, b token.Block) {
	if b.Text == "" {
		return
	}
	content := b.HTML
	if content == "" {
		content = b.Text
	}
	block := ContentBlock{Type: TypeParagraph, Content: Text(content)}
	if !c.lead {
		block.IsLead = true
		c.lead = true
	}
	c.add(block)
}

func image(c *classification, b token.Block) {
	img := ImageData{
		Src:     b.Image.Src,
		Alt:     b.Image.Alt,
		Caption: b.Image.Caption,
		Layout:  c.p.layout(b.Image.Layout),
	}
	if c.result.HeroImage == nil {
		c.result.HeroImage = &img.Src
		c.p.logger.Debug("promoted hero image", "src", img.Src)
		return
	}
	c.pending = append(c.pending, img)
}

func list(c *classification, b token.Block) {
	if len(b.Items) == 0 {
		return
	}
	lt := ListUnordered
	if b.Ordered {
		lt = ListOrdered
	}
	c.add(ContentBlock{Type: TypeList, Content: Text(b.HTML), ListType: lt})
}

func divider(c *classification, _ token.Block) {
	c.add(ContentBlock{Type: TypeDivider, Content: Text("")})
}

func infoGrid(c *classification, b token.Block) {
	items := make(InfoGrid, 0, len(b.Pairs))
	for _, pair := range b.Pairs {
		items = append(items, InfoItem{Label: pair.Label, Value: pair.Value})
	}
	c.add(ContentBlock{Type: TypeInfoGrid, Content: items})
}

func callout(c *classification, b token.Block) {
	variant := b.Variant
	switch variant {
	case VariantInsight, VariantWarning, VariantSuccess:
	default:
		variant = VariantInsight
	}
	c.add(ContentBlock{Type: TypeCallout, Content: Text(b.HTML), Variant: variant})
}

func cardGrid(c *classification, b token.Block) {
	cards := make(CardGrid, 0, len(b.Cards))
	for _, card := range b.Cards {
		cards = append(cards, Card{Icon: card.Icon, Title: card.Title, Description: card.Description})
	}
	c.add(ContentBlock{Type: TypeCardGrid, Content: cards})
}

// stat renders a [stat: VALUE: LABEL] directive as a one-item info grid.
func stat(c *classification, b token.Block) {
	c.add(ContentBlock{Type: TypeInfoGrid, Content: InfoGrid{{Label: b.Stat.Label, Value: b.Stat.Value}}})
}

// flush emits the pending images: one image block or one image grid in arrival order.
func (c *classification) flush() {
	switch len(c.pending) {
	case 0:
		return
	case 1:
		c.add(ContentBlock{Type: TypeImage, Content: c.pending[0]})
	default:
		c.add(ContentBlock{Type: TypeImageGrid, Content: ImageGrid(c.pending)})
	}
	c.pending = nil
}

func (c *classification) add(b ContentBlock) {
	b.ID = c.p.newID()
	c.result.ContentBlocks = append(c.result.ContentBlocks, b)
	c.p.logger.Debug("added block", "type", b.Type)
}

func (p *Parser) layout(layout string) string {
	switch layout {
	case LayoutFullWidth, LayoutContentWidth:
		return layout
	}
	return p.imageLayout
}
