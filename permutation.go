package enigma

import (
	"strings"
	"unicode"
)

// Permutation is a permutation of an alphabet's index space written as
// disjoint cycles, e.g. "(AELTPHQXRU) (BKNW) (CMOY)". Symbols that appear
// in no cycle map to themselves. A Permutation is immutable and may be
// shared by any number of rotors.
type Permutation struct {
	alphabet *Alphabet
	cycles   [][]int
	forward  []int
	inverse  []int
}

// NewPermutation parses cycles over alphabet a. Groups are separated by
// whitespace and each is wrapped in parentheses; "()" is allowed and maps
// nothing.
func NewPermutation(cycles string, a *Alphabet) (*Permutation, error) {
	p := identity(a)
	seen := make(map[rune]bool)

	var cycle []int
	inCycle := false
	for _, r := range cycles {
		switch {
		case !inCycle && unicode.IsSpace(r):
		case !inCycle && r == '(':
			inCycle = true
			cycle = nil
		case !inCycle:
			return nil, errorf(ErrParse, "unexpected %q outside a cycle in %q", r, cycles)
		case r == ')':
			inCycle = false
			if len(cycle) > 0 {
				p.addCycle(cycle)
			}
		case r == '(':
			return nil, errorf(ErrParse, "unbalanced parentheses in %q", cycles)
		case unicode.IsSpace(r):
			return nil, errorf(ErrParse, "cycle contains whitespace in %q", cycles)
		default:
			i, err := a.ToIndex(r)
			if err != nil {
				return nil, err
			}
			if seen[r] {
				return nil, errorf(ErrConfig, "character %q maps to more than one character", r)
			}
			seen[r] = true
			cycle = append(cycle, i)
		}
	}
	if inCycle {
		return nil, errorf(ErrParse, "unbalanced parentheses in %q", cycles)
	}

	return p, nil
}

// NewPermutationFromWiring builds the permutation that sends the k-th symbol
// of a to the k-th rune of wiring, the way rotor wirings are usually
// tabulated ("EKMFLGDQVZNTOWYHXUSPAIBRCJ").
func NewPermutationFromWiring(wiring string, a *Alphabet) (*Permutation, error) {
	images := []rune(wiring)
	if len(images) != a.Size() {
		return nil, errorf(ErrConfig, "wiring %q has %d characters, alphabet has %d", wiring, len(images), a.Size())
	}

	image := make([]int, len(images))
	used := make([]bool, len(images))
	for k, r := range images {
		i, err := a.ToIndex(r)
		if err != nil {
			return nil, err
		}
		if used[i] {
			return nil, errorf(ErrConfig, "wiring %q uses %q twice", wiring, r)
		}
		used[i] = true
		image[k] = i
	}

	p := identity(a)
	done := make([]bool, len(image))
	for start := range image {
		if done[start] {
			continue
		}
		var cycle []int
		for i := start; !done[i]; i = image[i] {
			done[i] = true
			cycle = append(cycle, i)
		}
		p.addCycle(cycle)
	}
	return p, nil
}

func identity(a *Alphabet) *Permutation {
	n := a.Size()
	p := &Permutation{
		alphabet: a,
		forward:  make([]int, n),
		inverse:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		p.forward[i] = i
		p.inverse[i] = i
	}
	return p
}

func (p *Permutation) addCycle(cycle []int) {
	for k, i := range cycle {
		next := cycle[(k+1)%len(cycle)]
		p.forward[i] = next
		p.inverse[next] = i
	}
	p.cycles = append(p.cycles, cycle)
}

func (p *Permutation) Size() int {
	return p.alphabet.Size()
}

func (p *Permutation) Alphabet() *Alphabet {
	return p.alphabet
}

// Permute returns the image of i, reduced modulo Size() first.
func (p *Permutation) Permute(i int) int {
	return p.forward[mod(i, len(p.forward))]
}

// Invert returns the preimage of i, reduced modulo Size() first.
func (p *Permutation) Invert(i int) int {
	return p.inverse[mod(i, len(p.inverse))]
}

func (p *Permutation) PermuteSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.symbol(p.Permute(i)), nil
}

func (p *Permutation) InvertSymbol(r rune) (rune, error) {
	i, err := p.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return p.alphabet.symbol(p.Invert(i)), nil
}

// Derangement reports whether every symbol lies in some cycle and no cycle
// has length one, i.e. nothing maps to itself.
func (p *Permutation) Derangement() bool {
	covered := 0
	for _, cycle := range p.cycles {
		if len(cycle) == 1 {
			return false
		}
		covered += len(cycle)
	}
	return covered == p.Size()
}

// String returns the permutation in cycle notation.
func (p *Permutation) String() string {
	var b strings.Builder
	for k, cycle := range p.cycles {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('(')
		for _, i := range cycle {
			b.WriteRune(p.alphabet.symbol(i))
		}
		b.WriteByte(')')
	}
	return b.String()
}
