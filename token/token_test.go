package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var parsers = []struct {
	name  string
	parse func(string) []Block
}{
	{"dom", ParseDOM},
	{"regex", ParseRegex},
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Block
	}{
		{
			name: "empty",
			in:   "  \n ",
			want: nil,
		},
		{
			name: "headings",
			in:   "<h1>Title</h1><h2>The <em>Problem</em></h2><h3> Sub </h3><h4>Label</h4><h2>  </h2>",
			want: []Block{
				{Kind: KindHeading1, Text: "Title"},
				{Kind: KindHeading2, Text: "The Problem"},
				{Kind: KindHeading3, Text: "Sub"},
				{Kind: KindLabel, Text: "Label"},
			},
		},
		{
			name: "paragraph holding only an image",
			in:   `<p> <img src="a.png" alt="A"> </p><p>Hello</p>`,
			want: []Block{
				{Kind: KindImage, Image: &Image{Src: "a.png", Alt: "A"}},
				{Kind: KindParagraph, Text: "Hello"},
			},
		},
		{
			name: "image paragraph padded with no-break spaces",
			in:   "<p><img src=\"a.png\" alt=\"x\">&nbsp;</p><p>\u00a0<img src=\"b.png\"></p><p>Hello</p>",
			want: []Block{
				{Kind: KindImage, Image: &Image{Src: "a.png", Alt: "x"}},
				{Kind: KindImage, Image: &Image{Src: "b.png"}},
				{Kind: KindParagraph, Text: "Hello"},
			},
		},
		{
			name: "linked image",
			in:   `<p><a href="/x"><img src="a.png"></a></p>`,
			want: []Block{
				{Kind: KindImage, Image: &Image{Src: "a.png"}},
			},
		},
		{
			name: "paragraph of several images",
			in:   `<p><img src="a.png"> <span><img src="b.png"></span></p>`,
			want: []Block{
				{Kind: KindImage, Image: &Image{Src: "a.png"}},
				{Kind: KindImage, Image: &Image{Src: "b.png"}},
			},
		},
		{
			name: "figure and picture",
			in: `<figure data-layout="full-width"><img src="b.png" alt="B"><figcaption>Cap <b>tion</b></figcaption></figure>` +
				`<picture><source srcset="c.webp"><img src="c.png" alt=""></picture>`,
			want: []Block{
				{Kind: KindImage, Image: &Image{Src: "b.png", Alt: "B", Caption: "Cap tion", Layout: "full-width"}},
				{Kind: KindImage, Image: &Image{Src: "c.png"}},
			},
		},
		{
			name: "blockquotes keep lines",
			in:   "<blockquote>Great work.\n— Jane Doe</blockquote><blockquote><p>Line one</p><p>— Someone</p></blockquote>",
			want: []Block{
				{Kind: KindBlockquote, Text: "Great work.\n— Jane Doe"},
				{Kind: KindBlockquote, Text: "Line one\n— Someone"},
			},
		},
		{
			name: "lists",
			in:   "<ul><li>One</li><li><strong>Two</strong> items</li><li> </li></ul><ol><li>A</li></ol><ul></ul>",
			want: []Block{
				{Kind: KindList, Items: []string{"One", "Two items"}},
				{Kind: KindList, Items: []string{"A"}, Ordered: true},
			},
		},
		{
			name: "nested list items flatten",
			in:   "<ul><li>Parent<ul><li>Child</li></ul></li><li>Sibling</li></ul>",
			want: []Block{
				{Kind: KindList, Items: []string{"Parent Child", "Sibling"}},
			},
		},
		{
			name: "code and rules",
			in:   "<pre><code>a &lt; b\n  c</code></pre><hr><code>x()</code><hr/>",
			want: []Block{
				{Kind: KindCode, Text: "a < b\n  c"},
				{Kind: KindRule},
				{Kind: KindCode, Text: "x()"},
				{Kind: KindRule},
			},
		},
		{
			name: "info grid",
			in:   `<div data-block-type="info-grid"><dl><dt>Role</dt><dd>Lead</dd><dt>Year</dt><dd>2024</dd></dl></div>`,
			want: []Block{
				{Kind: KindInfoGrid, Pairs: []Pair{{Label: "Role", Value: "Lead"}, {Label: "Year", Value: "2024"}}},
			},
		},
		{
			name: "callout",
			in:   `<div data-block-type="callout" data-variant="warning"><p>Watch out</p></div>`,
			want: []Block{
				{Kind: KindCallout, Text: "Watch out", Variant: "warning"},
			},
		},
		{
			name: "card grid",
			in: `<div data-block-type="card-grid">` +
				`<div data-card data-icon="rocket"><h4>Fast</h4><p>Very fast</p></div>` +
				`<div data-card><span data-card-title>Safe</span><p>Quite safe</p></div>` +
				`</div>`,
			want: []Block{
				{Kind: KindCardGrid, Cards: []Card{
					{Icon: "rocket", Title: "Fast", Description: "Very fast"},
					{Title: "Safe", Description: "Quite safe"},
				}},
			},
		},
		{
			name: "plain divs",
			in:   `<div><img src="d.png"></div><div>Plain <i>text</i></div><div> </div>`,
			want: []Block{
				{Kind: KindImage, Image: &Image{Src: "d.png"}},
				{Kind: KindParagraph, Text: "Plain text"},
			},
		},
		{
			name: "ignored top level content",
			in:   `<span>loose</span>bare text<section><h2>Nested</h2></section>`,
			want: nil,
		},
		{
			name: "comments entities and breaks",
			in:   `<!-- <h2>hidden</h2> --><p>Fish &amp; chips&nbsp;today</p><p>line<br>break</p><P>Upper</P>`,
			want: []Block{
				{Kind: KindParagraph, Text: "Fish & chips today"},
				{Kind: KindParagraph, Text: "line break"},
				{Kind: KindParagraph, Text: "Upper"},
			},
		},
		{
			name: "image without src is dropped",
			in:   `<img alt="nothing"><img src="e.png">`,
			want: []Block{
				{Kind: KindImage, Image: &Image{Src: "e.png"}},
			},
		},
	}
	for _, p := range parsers {
		for _, tt := range tests {
			t.Run(p.name+"/"+tt.name, func(t *testing.T) {
				got := p.parse(tt.in)
				if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(Block{}, "HTML")); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestParseDOMInnerHTML(t *testing.T) {
	got := ParseDOM(`<ul><li>One</li><li>Two</li></ul>`)
	if len(got) != 1 {
		t.Fatalf("got %d blocks, want 1", len(got))
	}
	if want := "<li>One</li><li>Two</li>"; got[0].HTML != want {
		t.Errorf("HTML = %q, want %q", got[0].HTML, want)
	}
}

func TestParseRegexUnclosed(t *testing.T) {
	got := ParseRegex(`<p>first</p><p>never closed`)
	want := []Block{
		{Kind: KindParagraph, Text: "first"},
		{Kind: KindParagraph, Text: "never closed"},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Block{}, "HTML")); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func FuzzParseRegex(f *testing.F) {
	f.Add(`<h2>Title</h2><p>Body [note: n]</p><ul><li>a</li></ul><img src="x.png">`)
	f.Add(`<div data-block-type="card-grid"><div data-card>`)
	f.Add(`<<<p>>></p`)
	f.Fuzz(func(t *testing.T, in string) {
		_ = ParseRegex(in)
		_ = ParseDOM(in)
	})
}
