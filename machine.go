package enigma

import "strings"

// Machine is a complete rotor machine: numRotors slots, the leftmost
// holding a reflector, pawls of them stepping, and a plugboard. Rotors are
// drawn by name from a catalog the machine shares but never mutates; the
// positions of the inserted rotors belong to the machine alone.
//
// A Machine is not safe for concurrent use.
type Machine struct {
	alphabet  *Alphabet
	numRotors int
	pawls     int
	catalog   map[string]*Rotor
	wheels    []*Wheel
	plugboard *Permutation
}

// NewMachine returns a machine over alphabet a with numRotors slots and
// pawls stepping rotors, choosing its rotors from rotors.
func NewMachine(a *Alphabet, numRotors, pawls int, rotors []*Rotor) (*Machine, error) {
	if len(rotors) < numRotors {
		return nil, errorf(ErrConfig, "%d rotors available, %d slots to fill", len(rotors), numRotors)
	}
	if numRotors <= 1 {
		return nil, errorf(ErrConfig, "rotor count must be greater than 1, got %d", numRotors)
	}
	if pawls < 0 || pawls >= numRotors {
		return nil, errorf(ErrConfig, "pawl count %d must be in [0, %d)", pawls, numRotors)
	}

	catalog := make(map[string]*Rotor, len(rotors))
	moving, reflectors := 0, 0
	for _, r := range rotors {
		if !r.Alphabet().Equal(a) {
			return nil, errorf(ErrConfig, "rotor %s does not share the machine alphabet", r.name)
		}
		if _, dup := catalog[r.name]; dup {
			return nil, errorf(ErrConfig, "rotor %s is defined twice", r.name)
		}
		catalog[r.name] = r
		switch r.kind {
		case Moving:
			moving++
		case Reflector:
			reflectors++
		}
	}
	if moving < pawls {
		return nil, errorf(ErrConfig, "%d moving rotors available, pawl count is %d", moving, pawls)
	}
	if reflectors < 1 {
		return nil, errorf(ErrConfig, "there must be at least one reflector")
	}

	return &Machine{
		alphabet:  a,
		numRotors: numRotors,
		pawls:     pawls,
		catalog:   catalog,
		plugboard: identity(a),
	}, nil
}

func (m *Machine) NumRotors() int      { return m.numRotors }
func (m *Machine) NumPawls() int       { return m.pawls }
func (m *Machine) Alphabet() *Alphabet { return m.alphabet }

// Rotor looks a rotor up in the catalog.
func (m *Machine) Rotor(name string) (*Rotor, bool) {
	r, ok := m.catalog[name]
	return r, ok
}

// InsertRotors fills the slots with the named rotors, reflector first.
// Every inserted rotor starts at position 0 with ring setting 0. On error
// the previously inserted rotors stay in place.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return errorf(ErrConfig, "%d rotors named, machine has %d slots", len(names), m.numRotors)
	}

	wheels := make([]*Wheel, len(names))
	inserted := make(map[string]bool, len(names))
	moving := 0
	for i, name := range names {
		r, ok := m.catalog[name]
		switch {
		case !ok:
			return errorf(ErrConfig, "rotor %q does not exist", name)
		case inserted[name]:
			return errorf(ErrConfig, "rotor %q inserted twice", name)
		case i == 0 && !r.Reflecting():
			return errorf(ErrConfig, "first rotor %q is not a reflector", name)
		case i != 0 && r.Reflecting():
			return errorf(ErrConfig, "reflector %q may only be inserted first", name)
		}
		inserted[name] = true
		if r.Rotates() {
			moving++
		}
		wheels[i] = NewWheel(r)
	}
	if moving != m.pawls {
		return errorf(ErrConfig, "%d moving rotors inserted, pawl count is %d", moving, m.pawls)
	}

	m.wheels = wheels
	return nil
}

// Rotors returns the names of the inserted rotors, reflector first.
func (m *Machine) Rotors() []string {
	names := make([]string, len(m.wheels))
	for i, w := range m.wheels {
		names[i] = w.Name()
	}
	return names
}

// Wheel returns the wheel in slot i, or nil.
func (m *Machine) Wheel(i int) *Wheel {
	if i < 0 || i >= len(m.wheels) {
		return nil
	}
	return m.wheels[i]
}

// SetRotors sets the rotors after the reflector to the symbols of setting,
// leftmost first.
func (m *Machine) SetRotors(setting string) error {
	symbols, err := m.slotSymbols(setting)
	if err != nil {
		return err
	}
	for i, c := range symbols {
		if err := m.wheels[i+1].SetSymbol(c); err != nil {
			return err
		}
	}
	return nil
}

// SetRingSetting sets the ring settings of the rotors after the reflector
// to the symbols of setting, leftmost first.
func (m *Machine) SetRingSetting(setting string) error {
	symbols, err := m.slotSymbols(setting)
	if err != nil {
		return err
	}
	for i, c := range symbols {
		if err := m.wheels[i+1].SetRingSymbol(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) slotSymbols(setting string) ([]rune, error) {
	if len(m.wheels) == 0 {
		return nil, errorf(ErrConfig, "no rotors inserted")
	}
	symbols := []rune(setting)
	if len(symbols) != m.numRotors-1 {
		return nil, errorf(ErrConfig, "setting %q must have %d characters", setting, m.numRotors-1)
	}
	for _, c := range symbols {
		if !m.alphabet.Contains(c) {
			return nil, errorf(ErrInvalidSymbol, "setting character %q is not in the alphabet", c)
		}
	}
	return symbols, nil
}

// Positions returns the symbols showing in the windows of the rotors after
// the reflector.
func (m *Machine) Positions() string {
	if len(m.wheels) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range m.wheels[1:] {
		b.WriteRune(m.alphabet.symbol(w.Setting()))
	}
	return b.String()
}

// SetPlugboard replaces the plugboard. Any permutation over the machine
// alphabet will do.
func (m *Machine) SetPlugboard(p *Permutation) error {
	if !p.Alphabet().Equal(m.alphabet) {
		return errorf(ErrConfig, "plugboard %s does not share the machine alphabet", p)
	}
	m.plugboard = p
	return nil
}

func (m *Machine) Plugboard() *Permutation {
	return m.plugboard
}

// ConvertIndex advances the rotors and returns the image of index c.
// Calling it twice with the same input generally gives different results.
func (m *Machine) ConvertIndex(c int) (int, error) {
	if len(m.wheels) == 0 {
		return 0, errorf(ErrConfig, "no rotors inserted")
	}

	c = m.plugboard.Permute(c)
	m.rotateRotors()
	for i := len(m.wheels) - 1; i >= 0; i-- {
		c = m.wheels[i].ConvertForward(c)
	}
	for i := 1; i < len(m.wheels); i++ {
		c = m.wheels[i].ConvertBackward(c)
	}
	return m.plugboard.Invert(c), nil
}

// Convert advances the rotors and returns the image of symbol c.
func (m *Machine) Convert(c rune) (rune, error) {
	i, err := m.alphabet.ToIndex(c)
	if err != nil {
		return 0, err
	}
	i, err = m.ConvertIndex(i)
	if err != nil {
		return 0, err
	}
	return m.alphabet.symbol(i), nil
}

// ConvertString converts msg symbol by symbol. Rotor state carries over
// between calls; call SetRotors to start a fresh message.
func (m *Machine) ConvertString(msg string) (string, error) {
	var b strings.Builder
	b.Grow(len(msg))
	for _, c := range msg {
		out, err := m.Convert(c)
		if err != nil {
			return "", err
		}
		b.WriteRune(out)
	}
	return b.String(), nil
}

// rotateRotors steps the rotors for one key press. A rotor whose right
// neighbor sits at a notch steps, and so does that neighbor if it can:
// this is what makes the middle rotor double-step. The rightmost rotor
// steps on every key press unless it already stepped.
func (m *Machine) rotateRotors() {
	n := len(m.wheels)
	stepped := make([]bool, n)
	for i := 0; i < n-1; i++ {
		left, right := m.wheels[i], m.wheels[i+1]
		if left.Rotates() && right.AtNotch() && !stepped[i] {
			left.advance()
			stepped[i] = true
			if right.Rotates() {
				right.advance()
				stepped[i+1] = true
			}
		}
	}
	if !stepped[n-1] && m.wheels[n-1].Rotates() {
		m.wheels[n-1].advance()
	}
}
