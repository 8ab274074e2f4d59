// Package setting parses the per-message setting lines of a message
// stream and applies them to a machine.
//
// A setting line looks like
//
//	* B Beta III IV I AXLE BCDE (HQ) (EX) (IP) (TR) (BY)
//
// that is, a star, the rotor names (reflector first), the rotor positions,
// an optional ring setting and an optional plugboard in cycle notation.
package setting

import (
	"fmt"
	"strings"

	"github.com/706f6c6c7578/enigma"
)

// Marker starts every setting line.
const Marker = "*"

// Setting is one parsed setting line.
type Setting struct {
	Rotors    []string
	Positions string
	Rings     string
	Plugboard string
}

// IsSetting reports whether line is a setting line rather than a message.
func IsSetting(line string) bool {
	return strings.Contains(line, Marker)
}

// Parse parses a setting line for a machine with numRotors slots.
func Parse(line string, numRotors int) (Setting, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != Marker {
		return Setting{}, fmt.Errorf("%w: setting line must start with %q", enigma.ErrParse, Marker)
	}
	fields = fields[1:]
	if len(fields) < numRotors+1 {
		return Setting{}, fmt.Errorf("%w: setting line needs %d rotor names and a position, got %d fields",
			enigma.ErrParse, numRotors, len(fields))
	}

	s := Setting{
		Rotors:    fields[:numRotors],
		Positions: fields[numRotors],
	}
	rest := fields[numRotors+1:]
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "(") {
		s.Rings = rest[0]
		rest = rest[1:]
	}
	for _, f := range rest {
		if !strings.HasPrefix(f, "(") {
			return Setting{}, fmt.Errorf("%w: unexpected %q in plugboard", enigma.ErrParse, f)
		}
	}
	s.Plugboard = strings.Join(rest, " ")
	return s, nil
}

// Apply inserts, positions and rings the rotors and installs the
// plugboard. A setting without a plugboard clears the previous one.
func (s Setting) Apply(m *enigma.Machine) error {
	plugboard, err := enigma.NewPermutation(s.Plugboard, m.Alphabet())
	if err != nil {
		return fmt.Errorf("plugboard: %w", err)
	}
	if err := m.InsertRotors(s.Rotors); err != nil {
		return err
	}
	if err := m.SetRotors(s.Positions); err != nil {
		return err
	}
	if s.Rings != "" {
		if err := m.SetRingSetting(s.Rings); err != nil {
			return err
		}
	}
	return m.SetPlugboard(plugboard)
}

func (s Setting) String() string {
	parts := append([]string{Marker}, s.Rotors...)
	parts = append(parts, s.Positions)
	if s.Rings != "" {
		parts = append(parts, s.Rings)
	}
	if s.Plugboard != "" {
		parts = append(parts, s.Plugboard)
	}
	return strings.Join(parts, " ")
}
