package enigma

// Kind is the closed set of rotor variants.
type Kind int

const (
	// Moving rotors have a ratchet and step.
	Moving Kind = iota
	// Fixed rotors never step.
	Fixed
	// Reflector is a fixed rotor in slot 0 that sends the signal back.
	Reflector
)

func (k Kind) String() string {
	switch k {
	case Moving:
		return "moving"
	case Fixed:
		return "fixed"
	case Reflector:
		return "reflector"
	}
	return "unknown"
}

// Rotor is a catalog entry: the immutable wiring and notch data of one
// rotor. Machines never mutate a Rotor; the position of a rotor in a
// machine lives in a Wheel.
type Rotor struct {
	name    string
	kind    Kind
	perm    *Permutation
	notches []int
}

// NewMovingRotor returns a stepping rotor whose notches are the symbols
// of notches.
func NewMovingRotor(name string, perm *Permutation, notches string) (*Rotor, error) {
	r := &Rotor{name: name, kind: Moving, perm: perm}
	for _, c := range notches {
		i, err := perm.Alphabet().ToIndex(c)
		if err != nil {
			return nil, errorf(ErrInvalidSymbol, "notch %q of rotor %s is not in the alphabet", c, name)
		}
		r.notches = append(r.notches, i)
	}
	return r, nil
}

func NewFixedRotor(name string, perm *Permutation) (*Rotor, error) {
	return &Rotor{name: name, kind: Fixed, perm: perm}, nil
}

// NewReflector requires perm to be a derangement.
func NewReflector(name string, perm *Permutation) (*Rotor, error) {
	if !perm.Derangement() {
		return nil, errorf(ErrConfig, "reflector %s: permutation %s is not a derangement", name, perm)
	}
	return &Rotor{name: name, kind: Reflector, perm: perm}, nil
}

func (r *Rotor) Name() string              { return r.name }
func (r *Rotor) Kind() Kind                { return r.kind }
func (r *Rotor) Permutation() *Permutation { return r.perm }
func (r *Rotor) Alphabet() *Alphabet       { return r.perm.Alphabet() }
func (r *Rotor) Size() int                 { return r.perm.Size() }

// Rotates reports whether the rotor has a ratchet.
func (r *Rotor) Rotates() bool { return r.kind == Moving }

func (r *Rotor) Reflecting() bool { return r.kind == Reflector }

// Notches returns the notch symbols in declaration order.
func (r *Rotor) Notches() string {
	out := make([]rune, len(r.notches))
	for k, i := range r.notches {
		out[k] = r.Alphabet().symbol(i)
	}
	return string(out)
}

func (r *Rotor) String() string {
	return "Rotor " + r.name
}
