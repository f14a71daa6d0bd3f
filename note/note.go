// Package note loads note files: YAML frontmatter followed by an HTML or Markdown body.
package note

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goosio/notedeck"
	"github.com/k1LoW/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

const fmSep = "---\n"

// Load reads a note file. Markdown bodies (.md, .markdown) are rendered to HTML first,
// any other body is used verbatim. A note without an id in its frontmatter gets the file
// name without extension.
func Load(path string) (_ *notedeck.NoteInput, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := Parse(b, IsMarkdown(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if n.ID == "" {
		n.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return n, nil
}

// Parse parses note file contents.
func Parse(b []byte, markdown bool) (_ *notedeck.NoteInput, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	n := &notedeck.NoteInput{}
	fm, body := splitFrontmatter(b)
	if fm != nil {
		if err := yaml.Unmarshal(fm, n); err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
	}
	if !markdown {
		n.Content = string(body)
		return n, nil
	}
	content, err := render(body)
	if err != nil {
		return nil, err
	}
	n.Content = content
	return n, nil
}

// IsMarkdown reports whether path names a Markdown note.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// render converts Markdown to the authoring HTML subset. Raw HTML is kept so custom
// div[data-block-type] blocks survive.
func render(b []byte) (string, error) {
	md := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))
	var buf bytes.Buffer
	if err := md.Convert(b, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// splitFrontmatter returns the frontmatter (nil when absent) and the body.
func splitFrontmatter(b []byte) ([]byte, []byte) {
	if !bytes.HasPrefix(b, []byte(fmSep)) {
		return nil, b
	}
	stuffs := bytes.SplitN(b, []byte(fmSep), 3)
	if len(stuffs) != 3 {
		return nil, b
	}
	return stuffs[1], stuffs[2]
}

// ApplyFrontmatter updates or creates a note file with the given frontmatter fields.
// Empty values leave the existing field untouched.
func ApplyFrontmatter(path string, fields map[string]string) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()

	var content []byte
	if c, err := os.ReadFile(path); err == nil {
		content = c
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read file: %w", err)
	}

	frontmatter := make(map[string]any)
	body := content
	if fm, b := splitFrontmatter(content); fm != nil {
		m := make(map[string]any)
		if err := yaml.Unmarshal(fm, &m); err == nil {
			if m != nil {
				frontmatter = m
			}
			body = b
		}
	}
	for k, v := range fields {
		if v != "" {
			frontmatter[k] = v
		}
	}

	fmYAML, err := yaml.Marshal(frontmatter)
	if err != nil {
		return fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	var out bytes.Buffer
	out.WriteString(fmSep)
	out.Write(bytes.TrimSpace(fmYAML))
	out.WriteString("\n")
	out.WriteString(fmSep)
	out.Write(body)

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
