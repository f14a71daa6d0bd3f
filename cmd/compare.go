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
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goosio/notedeck"
	"github.com/goosio/notedeck/config"
	"github.com/goosio/notedeck/note"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var compareCmd = &cobra.Command{
	Use:   "compare NOTE_FILE...",
	Short: "compare the slides of both tokenizers",
	Long: `compile each note with the DOM tokenizer and the regex tokenizer and report where the template sequences diverge.

The command fails when any note diverges.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		results := make([]int, len(args))
		eg, ctx := errgroup.WithContext(cmd.Context())
		for i, f := range args {
			eg.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				n, err := note.Load(f)
				if err != nil {
					return fmt.Errorf("failed to load %s: %w", f, err)
				}
				results[i] = c.Slides(n).Diverge(c.SlidesSimple(n))
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}
		diverged := report(cmd.OutOrStdout(), args, results)
		logger.Info("compared", "notes", len(args), "diverged", diverged)
		if diverged > 0 {
			return fmt.Errorf("%d of %d notes diverge", diverged, len(args))
		}
		return nil
	},
}

// report prints one line per note and returns how many diverged.
func report(w io.Writer, files []string, results []int) int {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	diverged := 0
	for i, f := range files {
		if results[i] < 0 {
			_, _ = green.Fprint(w, "✓ ")
			_, _ = fmt.Fprintln(w, f)
			continue
		}
		diverged++
		_, _ = red.Fprint(w, "✗ ")
		_, _ = fmt.Fprintf(w, "%s (slide %d)\n", f, results[i]+1)
	}
	return diverged
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
