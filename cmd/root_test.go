package cmd

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/k1LoW/tail"
)

func TestLatestLogs(t *testing.T) {
	buf := tail.New(2)
	for i := range 3 {
		if _, err := fmt.Fprintf(buf, "{\"msg\":\"added slide\",\"n\":%d}\n", i); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := fmt.Fprintln(buf, "not json"); err != nil {
		t.Fatal(err)
	}
	got := latestLogs(buf.Lines())
	want := []any{
		map[string]any{"msg": "added slide", "n": float64(2)},
		"not json",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
