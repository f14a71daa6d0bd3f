package notedeck

import (
	"testing"
)

func TestSplitAttribution(t *testing.T) {
	tests := []struct {
		name            string
		in              string
		wantQuote       string
		wantAttribution string
	}{
		{"em dash", "Great work.\n— Jane Doe", "Great work.", "Jane Doe"},
		{"hyphen", "Ship it.\n- Someone", "Ship it.", "Someone"},
		{"en dash", "Ship it.\n– Someone", "Ship it.", "Someone"},
		{"no attribution", "Just a quote.", "Just a quote.", ""},
		{"multi line quote", "Line one\nLine two\n—Jane", "Line one\nLine two", "Jane"},
		{"lines below the attribution qualify it", "Ship it.\n— Jane Doe\nCEO, Acme", "Ship it.", "Jane Doe, CEO, Acme"},
		{"last dash line wins", "- not this\nquote\n— Jane", "- not this\nquote", "Jane"},
		{"dash on the only line is quote", "— Alone", "— Alone", ""},
		{"bare dash is quote", "Quote\n—", "Quote\n—", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, attribution := splitAttribution(tt.in)
			if quote != tt.wantQuote {
				t.Errorf("quote = %q, want %q", quote, tt.wantQuote)
			}
			if attribution != tt.wantAttribution {
				t.Errorf("attribution = %q, want %q", attribution, tt.wantAttribution)
			}
		})
	}
}
