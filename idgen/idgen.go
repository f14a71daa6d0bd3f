// Package idgen provides the id strategies used for slides and content blocks.
//
// Slide and block ids are not stable across compiles; anchors that must survive a reparse
// come from the slug package instead. Compilers take a Generator explicitly, so no id state
// lives at package level.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique string identifiers.
type Generator func() string

// UUID returns a Generator producing random RFC 9562 UUID v4 strings.
func UUID() Generator {
	return func() string {
		return uuid.New().String()
	}
}

// Sequence returns a Generator producing prefix-1, prefix-2, ... Every call starts its own
// counter, so the caller decides how long a sequence lives.
func Sequence(prefix string) Generator {
	var n atomic.Int64
	return func() string {
		return prefix + "-" + strconv.FormatInt(n.Add(1), 10)
	}
}
