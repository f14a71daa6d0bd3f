/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goosio/notedeck"
	"github.com/goosio/notedeck/config"
	"github.com/goosio/notedeck/note"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatText = "text"
)

var (
	simple    bool
	watchMode bool
	page      string
	format    string
	out       string
)

var slidesCmd = &cobra.Command{
	Use:   "slides [NOTE_FILE]",
	Short: "compile a note into presentation slides",
	Long: `compile a note into presentation slides.

The note is an HTML or Markdown file with optional YAML frontmatter (title, subtitle, author, username, date, headerImage).
With --simple the note is tokenized without an element tree, as server side renderers do.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.WithStack(err)
		}()
		f := args[0]
		switch format {
		case formatJSON, formatText:
		default:
			return fmt.Errorf("invalid format: %s", format)
		}
		logger, closer, err := newLogger()
		if err != nil {
			return err
		}
		defer closer.Close()
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		c, err := notedeck.New(notedeck.WithConfig(cfg), notedeck.WithLogger(logger))
		if err != nil {
			return err
		}
		run := func() (err error) {
			defer func() {
				err = errors.WithStack(err)
			}()
			n, err := note.Load(f)
			if err != nil {
				return err
			}
			var slides notedeck.Slides
			if simple {
				slides = c.SlidesSimple(n)
			} else {
				slides = c.Slides(n)
			}
			slides, err = selectPages(slides, page)
			if err != nil {
				return err
			}
			if err := output(func(w io.Writer) error {
				return writeSlides(w, slides, format)
			}); err != nil {
				return err
			}
			logger.Info("compiled", "note", n.ID, "slides", len(slides))
			return nil
		}
		if !watchMode {
			return run()
		}
		return watch(cmd.Context(), logger, f, run)
	},
}

func writeSlides(w io.Writer, slides notedeck.Slides, format string) error {
	if format == formatText {
		_, err := fmt.Fprintln(w, slides.String())
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(slides)
}

// output writes to --out when set, otherwise to stdout.
func output(write func(io.Writer) error) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	if out == "" {
		return write(os.Stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// selectPages keeps the slides named by a --page expression.
func selectPages(slides notedeck.Slides, page string) (notedeck.Slides, error) {
	if page == "" {
		return slides, nil
	}
	pages, err := pageToPages(page, len(slides))
	if err != nil {
		return nil, err
	}
	selected := make(notedeck.Slides, 0, len(pages))
	for _, p := range pages {
		selected = append(selected, slides[p-1])
	}
	return selected, nil
}

func init() {
	rootCmd.AddCommand(slidesCmd)
	slidesCmd.Flags().BoolVarP(&simple, "simple", "s", false, "tokenize without an element tree")
	slidesCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "recompile when the note changes")
	slidesCmd.Flags().StringVarP(&page, "page", "p", "", "slides to output (e.g. 1,3-5)")
	slidesCmd.Flags().StringVarP(&format, "format", "", formatJSON, "output format (json|text)")
	slidesCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
}
