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
	"fmt"
	"strconv"
	"strings"
)

// pageToPages expands a page expression like "1,3-5,8-" into 1-based page numbers.
// Open ranges run to the first or the last page.
func pageToPages(page string, total int) ([]int, error) {
	if page == "" {
		pages := make([]int, total)
		for i := range total {
			pages[i] = i + 1
		}
		return pages, nil
	}

	var result []int
	for _, part := range strings.Split(page, ",") {
		part = strings.TrimSpace(part)
		from, to, isRange := strings.Cut(part, "-")
		if !isRange {
			n, err := pageNumber(from, 0)
			if err != nil {
				return nil, err
			}
			if n < 1 || n > total {
				return nil, fmt.Errorf("page number out of range: %d (total pages: %d)", n, total)
			}
			result = append(result, n)
			continue
		}
		if strings.Contains(to, "-") {
			return nil, fmt.Errorf("invalid range format: %s", part)
		}
		start, err := pageNumber(from, 1)
		if err != nil {
			return nil, err
		}
		end, err := pageNumber(to, total)
		if err != nil {
			return nil, err
		}
		if start < 1 || end > total || start > end {
			return nil, fmt.Errorf("invalid page range: %s (total pages: %d)", part, total)
		}
		for i := start; i <= end; i++ {
			result = append(result, i)
		}
	}
	return result, nil
}

// pageNumber parses one bound of a page expression, returning def for an empty bound.
func pageNumber(s string, def int) (int, error) {
	if s == "" {
		if def == 0 {
			return 0, fmt.Errorf("invalid page number: %q", s)
		}
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid page number: %s", s)
	}
	return n, nil
}
