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
	"io"

	"github.com/goosio/notedeck/casestudy"
	"github.com/goosio/notedeck/config"
	"github.com/goosio/notedeck/note"
	"github.com/k1LoW/errors"
	"github.com/spf13/cobra"
)

var headerImage string

var casestudyCmd = &cobra.Command{
	Use:   "casestudy [NOTE_FILE]",
	Short: "compile a note into case study content blocks",
	Long: `compile a note into case study content blocks and a table of contents.

The hero image is --header-image, else headerImage of the frontmatter, else the first image of the note.
With --simple only the hero image and the table of contents are resolved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.WithStack(err)
		}()
		f := args[0]
		logger, closer, err := newLogger()
		if err != nil {
			return err
		}
		defer closer.Close()
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		p, err := casestudy.New(casestudy.WithConfig(cfg), casestudy.WithLogger(logger))
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
			hero := headerImage
			if hero == "" {
				hero = n.HeaderImage
			}
			var parsed *casestudy.ParsedCaseStudy
			if simple {
				parsed = casestudy.ParseSimple(n.Content, hero)
			} else {
				parsed = p.Parse(n.Content, hero)
			}
			if err := output(func(w io.Writer) error {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(parsed)
			}); err != nil {
				return err
			}
			logger.Info("compiled", "note", n.ID, "blocks", len(parsed.ContentBlocks), "sections", len(parsed.TableOfContents))
			return nil
		}
		if !watchMode {
			return run()
		}
		return watch(cmd.Context(), logger, f, run)
	},
}

func init() {
	rootCmd.AddCommand(casestudyCmd)
	casestudyCmd.Flags().BoolVarP(&simple, "simple", "s", false, "resolve only the hero image and the table of contents")
	casestudyCmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "recompile when the note changes")
	casestudyCmd.Flags().StringVarP(&headerImage, "header-image", "", "", "hero image URL overriding the note")
	casestudyCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
}
