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
	"github.com/goosio/notedeck/note"
	"github.com/spf13/cobra"
)

var (
	title    string
	subtitle string
	author   string
	username string
)

var newCmd = &cobra.Command{
	Use:   "new NOTE_FILE",
	Short: "create a new note",
	Long: `create a new note.

Frontmatter with the given fields is added to the note file.
If the file doesn't exist, it will be created.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := args[0]
		if err := note.ApplyFrontmatter(f, map[string]string{
			"title":    title,
			"subtitle": subtitle,
			"author":   author,
			"username": username,
		}); err != nil {
			return err
		}
		cmd.PrintErrf("Applied frontmatter to %s\n", f)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&title, "title", "t", "", "title of the note")
	newCmd.Flags().StringVarP(&subtitle, "subtitle", "", "", "subtitle shown on the title slide")
	newCmd.Flags().StringVarP(&author, "author", "a", "", "author of the note")
	newCmd.Flags().StringVarP(&username, "username", "u", "", "username used for the end slide URL")
}
