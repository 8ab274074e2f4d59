package enigma

// Wheel is a Rotor mounted in a machine slot. It holds the visible
// position (setting) and the ring setting, the offset between the wiring
// core and the lettered ring. Behavior that differs between rotor kinds is
// selected by switching on the kind of the mounted rotor.
type Wheel struct {
	rotor       *Rotor
	setting     int
	ringSetting int
}

// NewWheel mounts r at position 0 with ring setting 0.
func NewWheel(r *Rotor) *Wheel {
	return &Wheel{rotor: r}
}

func (w *Wheel) Rotor() *Rotor    { return w.rotor }
func (w *Wheel) Name() string     { return w.rotor.name }
func (w *Wheel) Size() int        { return w.rotor.Size() }
func (w *Wheel) Rotates() bool    { return w.rotor.Rotates() }
func (w *Wheel) Reflecting() bool { return w.rotor.Reflecting() }
func (w *Wheel) Setting() int     { return w.setting }
func (w *Wheel) RingSetting() int { return w.ringSetting }

// Set moves the wheel to position posn modulo the alphabet size.
// A reflector only has position 0.
func (w *Wheel) Set(posn int) error {
	if w.rotor.kind == Reflector {
		if posn != 0 {
			return errorf(ErrNotSupported, "reflector %s has only one position", w.rotor.name)
		}
		return nil
	}
	w.setting = mod(posn, w.Size())
	return nil
}

// SetSymbol moves the wheel so that symbol c shows in the window.
func (w *Wheel) SetSymbol(c rune) error {
	i, err := w.rotor.Alphabet().ToIndex(c)
	if err != nil {
		return err
	}
	return w.Set(i)
}

// SetRingSetting turns the ring to posn modulo the alphabet size. The
// visible position does not change, so notches keep lining up with the
// letter in the window whatever order the setters are called in.
func (w *Wheel) SetRingSetting(posn int) error {
	if w.rotor.kind == Reflector {
		if posn != 0 {
			return errorf(ErrNotSupported, "reflector %s can only have ring setting 0", w.rotor.name)
		}
		return nil
	}
	w.ringSetting = mod(posn, w.Size())
	return nil
}

func (w *Wheel) SetRingSymbol(c rune) error {
	i, err := w.rotor.Alphabet().ToIndex(c)
	if err != nil {
		return err
	}
	return w.SetRingSetting(i)
}

// offset is the rotation of the wiring core relative to position 0.
func (w *Wheel) offset() int {
	return w.setting - w.ringSetting
}

// ConvertForward maps contact p entering from the right to the contact it
// leaves on the left.
func (w *Wheel) ConvertForward(p int) int {
	o := w.offset()
	return mod(w.rotor.perm.Permute(p+o)-o, w.Size())
}

// ConvertBackward is the inverse of ConvertForward.
func (w *Wheel) ConvertBackward(e int) int {
	o := w.offset()
	return mod(w.rotor.perm.Invert(e+o)-o, w.Size())
}

// AtNotch reports whether the wheel lets its left neighbor advance.
func (w *Wheel) AtNotch() bool {
	if w.rotor.kind != Moving {
		return false
	}
	for _, n := range w.rotor.notches {
		if n == w.setting {
			return true
		}
	}
	return false
}

// Advance steps a moving wheel by one position.
func (w *Wheel) Advance() error {
	if w.rotor.kind != Moving {
		return errorf(ErrNotSupported, "%s rotor %s cannot advance", w.rotor.kind, w.rotor.name)
	}
	w.advance()
	return nil
}

func (w *Wheel) advance() {
	w.setting = mod(w.setting+1, w.Size())
}
