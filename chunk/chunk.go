// Package chunk splits over-long text and item lists into fixed-size, order-preserving groups.
package chunk

import "strings"

const (
	// DefaultMaxWords is the word budget of one text chunk.
	DefaultMaxWords = 150
	// DefaultMaxItems is the item budget of one list chunk.
	DefaultMaxItems = 6
)

// SplitText splits text on whitespace into groups of at most maxWords words.
// The last group may be short. Blank text yields no groups.
func SplitText(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for _, group := range SplitList(words, maxWords) {
		chunks = append(chunks, strings.Join(group, " "))
	}
	return chunks
}

// SplitList slices items into groups of at most maxItems elements.
// The returned groups share the backing array of items.
func SplitList[T any](items []T, maxItems int) [][]T {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	if len(items) == 0 {
		return nil
	}
	groups := make([][]T, 0, (len(items)+maxItems-1)/maxItems)
	for start := 0; start < len(items); start += maxItems {
		end := min(start+maxItems, len(items))
		groups = append(groups, items[start:end:end])
	}
	return groups
}

// CountWords returns the number of whitespace separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
