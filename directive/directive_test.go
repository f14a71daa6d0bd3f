package directive

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goosio/notedeck/token"
)

func TestExtractNotes(t *testing.T) {
	tests := []struct {
		in        string
		wantText  string
		wantNotes []string
	}{
		{"Hello world", "Hello world", nil},
		{"Hello [note: say hi slowly] world", "Hello world", []string{"say hi slowly"}},
		{"[note: one] A [note: two]", "A", []string{"one", "two"}},
		{"[note: ]Only text", "Only text", nil},
		{"[note missing colon]", "[note missing colon]", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			gotText, gotNotes := ExtractNotes(tt.in)
			if gotText != tt.wantText {
				t.Errorf("text = %q, want %q", gotText, tt.wantText)
			}
			if diff := cmp.Diff(tt.wantNotes, gotNotes); diff != "" {
				t.Errorf("notes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractStats(t *testing.T) {
	tests := []struct {
		in        string
		wantText  string
		wantStats []token.Stat
	}{
		{"[stat: 42%: conversion lift]", "", []token.Stat{{Value: "42%", Label: "conversion lift"}}},
		{"Before [stat: 3x : faster builds] after", "Before after", []token.Stat{{Value: "3x", Label: "faster builds"}}},
		{"[stat: value]", "[stat: value]", nil},
		{"no directive", "no directive", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			gotText, gotStats := ExtractStats(tt.in)
			if gotText != tt.wantText {
				t.Errorf("text = %q, want %q", gotText, tt.wantText)
			}
			if diff := cmp.Diff(tt.wantStats, gotStats); diff != "" {
				t.Errorf("stats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		in   []token.Block
		want []token.Block
	}{
		{
			name: "stat paragraph becomes stat block",
			in:   []token.Block{{Kind: token.KindParagraph, Text: "[stat: 42%: conversion lift]", HTML: "[stat: 42%: conversion lift]"}},
			want: []token.Block{{Kind: token.KindStat, Stat: &token.Stat{Value: "42%", Label: "conversion lift"}}},
		},
		{
			name: "stat with remaining text",
			in:   []token.Block{{Kind: token.KindParagraph, Text: "We saw [stat: 2x: growth] this year [note: pause]"}},
			want: []token.Block{
				{Kind: token.KindStat, Stat: &token.Stat{Value: "2x", Label: "growth"}, Notes: []string{"pause"}},
				{Kind: token.KindParagraph, Text: "We saw this year"},
			},
		},
		{
			name: "note only paragraph keeps its notes",
			in:   []token.Block{{Kind: token.KindParagraph, Text: "[note: remember the demo]"}},
			want: []token.Block{{Kind: token.KindParagraph, Notes: []string{"remember the demo"}}},
		},
		{
			name: "heading keeps notes",
			in:   []token.Block{{Kind: token.KindHeading2, Text: "Results [note: slow down]"}},
			want: []token.Block{{Kind: token.KindHeading2, Text: "Results", Notes: []string{"slow down"}}},
		},
		{
			name: "list items are stripped and stats follow",
			in:   []token.Block{{Kind: token.KindList, Items: []string{"a", "[stat: 9: nines]", "b [note: n]"}}},
			want: []token.Block{
				{Kind: token.KindList, Items: []string{"a", "b"}, Notes: []string{"n"}},
				{Kind: token.KindStat, Stat: &token.Stat{Value: "9", Label: "nines"}},
			},
		},
		{
			name: "list of notes only leaves its notes",
			in:   []token.Block{{Kind: token.KindList, Items: []string{"[note: nothing visible]"}}},
			want: []token.Block{{Kind: token.KindParagraph, Notes: []string{"nothing visible"}}},
		},
		{
			name: "code is literal",
			in:   []token.Block{{Kind: token.KindCode, Text: "x := \"[note: keep]\"\n  y"}},
			want: []token.Block{{Kind: token.KindCode, Text: "x := \"[note: keep]\"\n  y"}},
		},
		{
			name: "blockquote keeps lines",
			in:   []token.Block{{Kind: token.KindBlockquote, Text: "Great work. [note: smile]\n— Jane Doe"}},
			want: []token.Block{{Kind: token.KindBlockquote, Text: "Great work.\n— Jane Doe", Notes: []string{"smile"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
