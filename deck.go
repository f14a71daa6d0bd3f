// Package notedeck compiles authored note HTML into a presentation deck.
//
// ParseNoteToSlides tokenizes with a parsed element tree, ParseNoteToSlidesSimple with
// string range extraction only. Both feed the same grouping engine, so for well-formed
// content they produce the same template sequence; the simple variant is meant for
// environments that render before an element tree is available.
package notedeck

import (
	"io"
	"log/slog"

	"github.com/goosio/notedeck/chunk"
	"github.com/goosio/notedeck/config"
	"github.com/goosio/notedeck/idgen"
	"github.com/goosio/notedeck/token"
	"github.com/k1LoW/errors"
)

const (
	defaultSubtitleMaxWords  = 30
	defaultImageTextMaxWords = 50
	defaultDomain            = "goos.io"
)

// Compiler holds the tuning of a slide compile. It is immutable after New and safe for
// concurrent use.
type Compiler struct {
	maxWords          int
	maxItems          int
	subtitleMaxWords  int
	imageTextMaxWords int
	domain            string
	newID             idgen.Generator
	conditions        []*condition
	logger            *slog.Logger
}

type Option func(*Compiler) error

// WithLogger sets the logger receiving debug records about grouping decisions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Compiler) error {
		c.logger = logger
		return nil
	}
}

// WithIDGenerator sets the slide id strategy.
func WithIDGenerator(gen idgen.Generator) Option {
	return func(c *Compiler) error {
		c.newID = gen
		return nil
	}
}

// WithMaxWords sets the word budget of one content slide.
func WithMaxWords(n int) Option {
	return func(c *Compiler) error {
		if n > 0 {
			c.maxWords = n
		}
		return nil
	}
}

// WithMaxItems sets the item budget of one list slide.
func WithMaxItems(n int) Option {
	return func(c *Compiler) error {
		if n > 0 {
			c.maxItems = n
		}
		return nil
	}
}

// WithDomain sets the domain of the end slide URL.
func WithDomain(domain string) Option {
	return func(c *Compiler) error {
		if domain != "" {
			c.domain = domain
		}
		return nil
	}
}

// WithConfig applies a loaded configuration, compiling its slide conditions.
func WithConfig(cfg *config.Config) Option {
	return func(c *Compiler) error {
		if cfg == nil {
			return nil
		}
		if cfg.MaxWords > 0 {
			c.maxWords = cfg.MaxWords
		}
		if cfg.MaxItems > 0 {
			c.maxItems = cfg.MaxItems
		}
		if cfg.SubtitleMaxWords > 0 {
			c.subtitleMaxWords = cfg.SubtitleMaxWords
		}
		if cfg.ImageTextMaxWords > 0 {
			c.imageTextMaxWords = cfg.ImageTextMaxWords
		}
		if cfg.Domain != "" {
			c.domain = cfg.Domain
		}
		conditions, err := compileConditions(cfg.Defaults)
		if err != nil {
			return err
		}
		c.conditions = conditions
		return nil
	}
}

// New creates a new Compiler.
func New(opts ...Option) (_ *Compiler, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	c := newCompiler()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func newCompiler() *Compiler {
	return &Compiler{
		maxWords:          chunk.DefaultMaxWords,
		maxItems:          chunk.DefaultMaxItems,
		subtitleMaxWords:  defaultSubtitleMaxWords,
		imageTextMaxWords: defaultImageTextMaxWords,
		domain:            defaultDomain,
		newID:             idgen.UUID(),
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// ParseNoteToSlides compiles a note into slides, tokenizing with an element tree.
// It never fails: options that cannot be applied are logged and the defaults are used.
func ParseNoteToSlides(note *NoteInput, opts ...Option) Slides {
	return orDefault(opts...).Slides(note)
}

// ParseNoteToSlidesSimple compiles a note into slides without an element tree.
func ParseNoteToSlidesSimple(note *NoteInput, opts ...Option) Slides {
	return orDefault(opts...).SlidesSimple(note)
}

func orDefault(opts ...Option) *Compiler {
	c, err := New(opts...)
	if err != nil {
		c = newCompiler()
		c.logger = slog.Default()
		c.logger.Warn("failed to apply options, using defaults", "error", err)
	}
	return c
}

// Slides compiles a note, tokenizing its content with an element tree.
func (c *Compiler) Slides(note *NoteInput) Slides {
	return c.compile(note, token.ParseDOM)
}

// SlidesSimple compiles a note, tokenizing its content with string range extraction.
func (c *Compiler) SlidesSimple(note *NoteInput) Slides {
	return c.compile(note, token.ParseRegex)
}

func (c *Compiler) compile(note *NoteInput, tokenize func(string) []token.Block) Slides {
	if note == nil {
		note = &NoteInput{}
	}
	blocks := primitives(tokenize(note.Content))
	g := newGrouper(c, note, blocks)
	slides := c.applyConditions(g.run())
	c.logger.Debug("compiled slides", "note", note.ID, "slides", len(slides))
	return slides
}
