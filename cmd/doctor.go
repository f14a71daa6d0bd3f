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
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/goosio/notedeck"
	"github.com/goosio/notedeck/casestudy"
	"github.com/goosio/notedeck/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "check the notedeck environment",
	Long:  `check that the configuration loads, its conditions compile and the state directory is writable.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		bold := color.New(color.Bold)

		allOK := true

		cmd.Print("🔧 Checking configuration file ... ")
		cfg, err := config.Load(profile)
		if err != nil {
			red.Println("✗ CONFIG ERROR")
			cmd.Printf("   Error loading config: %v\n", err)
			cmd.Printf("   Config directory: %s\n", config.HomePath())
			allOK = false
		} else {
			green.Println("✓ OK")
			cmd.Printf("   Config directory: %s\n", config.HomePath())
		}

		if cfg != nil {
			cmd.Print("🧩 Checking slide conditions ... ")
			if _, err := notedeck.New(notedeck.WithConfig(cfg)); err != nil {
				red.Println("✗ INVALID")
				cmd.Printf("   %v\n", err)
				allOK = false
			} else {
				green.Println("✓ OK")
				cmd.Printf("   %d condition(s) compiled\n", len(cfg.Defaults))
			}

			cmd.Print("🖼  Checking case study settings ... ")
			if _, err := casestudy.New(casestudy.WithConfig(cfg)); err != nil {
				red.Println("✗ INVALID")
				cmd.Printf("   %v\n", err)
				allOK = false
			} else {
				green.Println("✓ OK")
			}
		}

		cmd.Print("📝 Checking state directory ... ")
		if err := checkWritable(config.StateHomePath()); err != nil {
			yellow.Println("⚠️ NOT WRITABLE")
			cmd.Printf("   %v\n", err)
			cmd.Println("   Logs and error reports will not be kept.")
			allOK = false
		} else {
			green.Println("✓ OK")
			cmd.Printf("   State directory: %s\n", config.StateHomePath())
		}

		cmd.Println()
		if allOK {
			bold.Printf("🎉 ")
			green.Print("All checks passed! You are ready to use notedeck")
			bold.Println(".")
			cmd.Println()
			cmd.Println("Try compiling a note:")
			yellow.Println("  notedeck slides talk.md")
		} else {
			red.Println("⚠️  Setup is incomplete.")
			cmd.Println("\nPlease fix the issues above to use notedeck properly.")
		}
		return nil
	},
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return os.Remove(filepath.Clean(name))
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
