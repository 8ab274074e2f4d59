package config

import (
	"fmt"
	"sort"

	"github.com/706f6c6c7578/enigma"
)

var rotorWirings = map[string]string{
	"I":     "EKMFLGDQVZNTOWYHXUSPAIBRCJ",
	"II":    "AJDKSIRUXBLHWTMCQGZNPYFVOE",
	"III":   "BDFHJLCPRTXVZNYEIWGAKMUSQO",
	"IV":    "ESOVPZJAYQUIRHXLNFTGKDCMWB",
	"V":     "VZBRGITYUPSDNHLXAWMJQOFECK",
	"VI":    "JPGVOUMFYQBENHZRDKASXLICTW",
	"VII":   "NZJHGRCXMYSWBOUFAIVLPEKQDT",
	"VIII":  "FKQHTLXOCBJSPDZRAMEWNIUYGV",
	"Beta":  "LEYJVCNIXWPBQMDRTAKZGFUHOS",
	"Gamma": "FSOKANUERHMBTIJYCWLQPZXVGD",
}

var rotorNotches = map[string]string{
	"I":    "Q",
	"II":   "E",
	"III":  "V",
	"IV":   "J",
	"V":    "Z",
	"VI":   "ZM",
	"VII":  "ZM",
	"VIII": "ZM",
}

var reflectors = map[string]string{
	"A":     "EJMZALYXVBWFCRQUONTSPIKHGD",
	"B":     "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	"C":     "FVPJIAOYEDRZXWGCTKUQSBNMHL",
	"BThin": "ENKQAUYWJICOPBLMDXZVFTHRGS",
	"CThin": "RDOBJNTKVEHMLFCWZAXGYIPSUQ",
}

var presets = map[string]struct {
	numRotors  int
	fixed      []string
	reflectors []string
}{
	"m3": {4, nil, []string{"A", "B", "C"}},
	"m4": {5, []string{"Beta", "Gamma"}, []string{"BThin", "CThin"}},
}

var movingOrder = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII"}

// Presets returns the names of the built-in machines.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a built-in machine: "m3" (three rotors, reflectors A, B
// and C) or "m4" (three rotors plus Beta or Gamma, thin reflectors).
// Both carry rotors I to VIII.
func Preset(name string) (*Config, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q, available: %v", enigma.ErrConfig, name, Presets())
	}

	c := &Config{
		Alphabet:  enigma.Upper,
		NumRotors: p.numRotors,
		Pawls:     3,
	}
	for _, r := range p.reflectors {
		c.Catalog = append(c.Catalog, RotorSpec{Name: r, Type: TypeReflector, Wiring: reflectors[r]})
	}
	for _, r := range p.fixed {
		c.Catalog = append(c.Catalog, RotorSpec{Name: r, Type: TypeFixed, Wiring: rotorWirings[r]})
	}
	for _, r := range movingOrder {
		c.Catalog = append(c.Catalog, RotorSpec{Name: r, Type: TypeMoving, Notches: rotorNotches[r], Wiring: rotorWirings[r]})
	}
	return c, nil
}
