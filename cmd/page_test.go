package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goosio/notedeck"
)

func TestPageToPages(t *testing.T) {
	tests := []struct {
		page    string
		total   int
		want    []int
		wantErr bool
	}{
		{"", 3, []int{1, 2, 3}, false},
		{"3", 10, []int{3}, false},
		{"1,3,4", 10, []int{1, 3, 4}, false},
		{"3-", 10, []int{3, 4, 5, 6, 7, 8, 9, 10}, false},
		{"-5", 10, []int{1, 2, 3, 4, 5}, false},
		{"3-5", 10, []int{3, 4, 5}, false},
		{"1, 4-5", 10, []int{1, 4, 5}, false},
		{"0", 10, nil, true},
		{"11", 10, nil, true},
		{"5-3", 10, nil, true},
		{"1-2-3", 10, nil, true},
		{"a", 10, nil, true},
		{"2-b", 10, nil, true},
		{",", 10, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.page, func(t *testing.T) {
			got, err := pageToPages(tt.page, tt.total)
			if (err != nil) != tt.wantErr {
				t.Errorf("pageToPages() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("pageToPages() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectPages(t *testing.T) {
	slides := notedeck.ParseNoteToSlides(&notedeck.NoteInput{Title: "Deck", Content: "<h1>A</h1><h1>B</h1>"})
	got, err := selectPages(slides, "2-3")
	if err != nil {
		t.Fatal(err)
	}
	want := []notedeck.Template{notedeck.TemplateSection, notedeck.TemplateSection}
	if diff := cmp.Diff(want, got.Templates()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if _, err := selectPages(slides, "9"); err == nil {
		t.Error("want error")
	}
}
