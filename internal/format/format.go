// Package format lays converted messages out for printing.
package format

import "strings"

// BlockSize is the traditional group length of enciphered traffic.
const BlockSize = 5

// Group returns msg with a space after every n runes. The last group may
// be shorter. A non-positive n leaves msg unchanged.
func Group(msg string, n int) string {
	if n <= 0 {
		return msg
	}

	var b strings.Builder
	b.Grow(len(msg) + len(msg)/n)
	i := 0
	for _, r := range msg {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		i++
	}
	return b.String()
}
