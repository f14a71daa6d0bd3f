package casestudy

import (
	"regexp"
	"strings"

	"github.com/goosio/notedeck/directive"
	"github.com/goosio/notedeck/slug"
	"golang.org/x/net/html"
)

var (
	simpleCommentRe = regexp.MustCompile(`(?s)<!--.*?-->`)
	simpleImgRe     = regexp.MustCompile(`(?i)<img\b[^>]*?\ssrc\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	simpleH2Re      = regexp.MustCompile(`(?is)<h2\b[^>]*>(.*?)</h2\s*>`)
	simpleTagRe     = regexp.MustCompile(`(?s)<[^>]*>`)
)

// ParseSimple is the reduced-fidelity variant of Parse for callers without an element tree.
// It only resolves the hero image and the table of contents; ContentBlocks is always empty
// and the result is meant to be replaced by a full Parse once one is possible.
func ParseSimple(src, headerImage string) *ParsedCaseStudy {
	result := newParsedCaseStudy(headerImage)
	src = simpleCommentRe.ReplaceAllString(src, "")
	if result.HeroImage == nil {
		for _, m := range simpleImgRe.FindAllStringSubmatch(src, -1) {
			hero := strings.TrimSpace(html.UnescapeString(m[1] + m[2] + m[3]))
			if hero != "" {
				result.HeroImage = &hero
				break
			}
		}
	}
	slugs := &slug.Registry{}
	for _, m := range simpleH2Re.FindAllStringSubmatch(src, -1) {
		title := html.UnescapeString(simpleTagRe.ReplaceAllString(m[1], ""))
		title, _ = directive.ExtractNotes(title)
		title, _ = directive.ExtractStats(title)
		if title = strings.Join(strings.Fields(title), " "); title == "" {
			continue
		}
		result.TableOfContents = append(result.TableOfContents, TableOfContentsEntry{ID: slugs.Unique(title), Title: title})
	}
	return result
}
