package enigma

import (
	"strings"
	"unicode"
)

// Upper is the default alphabet of the historical machines.
const Upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// reserved runes belong to the cycle notation and may not be symbols.
const reserved = "*()"

// Alphabet maps symbols to dense indices [0, Size()) and back.
// It is immutable once built.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet returns the alphabet whose symbol k is the k-th rune of chars.
func NewAlphabet(chars string) (*Alphabet, error) {
	if chars == "" {
		return nil, errorf(ErrConfig, "alphabet is empty")
	}

	symbols := []rune(chars)
	index := make(map[rune]int, len(symbols))
	for i, r := range symbols {
		if strings.ContainsRune(reserved, r) {
			return nil, errorf(ErrConfig, "forbidden character %q in alphabet", r)
		}
		if _, dup := index[r]; dup {
			return nil, errorf(ErrConfig, "duplicate character %q in alphabet", r)
		}
		index[r] = i
	}

	return &Alphabet{symbols: symbols, index: index}, nil
}

func (a *Alphabet) Size() int {
	return len(a.symbols)
}

func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// ToIndex returns the index of r.
func (a *Alphabet) ToIndex(r rune) (int, error) {
	i, ok := a.index[r]
	if !ok {
		return 0, errorf(ErrInvalidSymbol, "character %q is not in the alphabet", r)
	}
	return i, nil
}

// ToSymbol returns symbol number i.
func (a *Alphabet) ToSymbol(i int) (rune, error) {
	if i < 0 || i >= len(a.symbols) {
		return 0, errorf(ErrIndexOutOfRange, "no character at index %d of %d", i, len(a.symbols))
	}
	return a.symbols[i], nil
}

// Equal reports whether a and b hold the same symbols in the same order.
func (a *Alphabet) Equal(b *Alphabet) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || len(a.symbols) != len(b.symbols) {
		return false
	}
	for i, r := range a.symbols {
		if b.symbols[i] != r {
			return false
		}
	}
	return true
}

// HasLower reports whether any symbol is a lower-case letter.
func (a *Alphabet) HasLower() bool {
	for _, r := range a.symbols {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}

// symbol is ToSymbol for indices already reduced into range.
func (a *Alphabet) symbol(i int) rune {
	return a.symbols[i]
}

// mod returns x modulo m in [0, m).
func mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
