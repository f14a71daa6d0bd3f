// Package slug derives stable anchor ids from heading text.
package slug

import (
	"regexp"
	"strconv"
	"strings"
)

// Fallback is used when a heading has no word characters left.
const Fallback = "section"

var (
	nonWordRe    = regexp.MustCompile(`[^a-z0-9_\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	hyphensRe    = regexp.MustCompile(`-+`)
)

// Make lowercases text, strips non-word characters, turns whitespace runs into hyphens
// and collapses repeated hyphens.
func Make(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = nonWordRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), "-")
	s = hyphensRe.ReplaceAllString(s, "-")
	if s == "" {
		return Fallback
	}
	return s
}

// Registry hands out ids that are unique within one compile call.
// The zero value is ready to use.
type Registry struct {
	seen map[string]struct{}
}

// Unique returns Make(text), suffixed with -1, -2, ... when already taken.
func (r *Registry) Unique(text string) string {
	if r.seen == nil {
		r.seen = map[string]struct{}{}
	}
	base := Make(text)
	id := base
	for n := 1; ; n++ {
		if _, ok := r.seen[id]; !ok {
			break
		}
		id = base + "-" + strconv.Itoa(n)
	}
	r.seen[id] = struct{}{}
	return id
}
