package enigma

import (
	"errors"
	"testing"
)

// navalCycles holds the historical rotor and reflector wirings in cycle
// notation over Upper.
var navalCycles = map[string]string{
	"I":     "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)",
	"II":    "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)",
	"III":   "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)",
	"IV":    "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)",
	"V":     "(AVOLDRWFIUQ)(BZKSMNHYC) (EGTJPX)",
	"Beta":  "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)",
	"Gamma": "(AFNIRWXVZDKMTQCOJHE) (BSL) (GUPY)",
	"B":     "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)",
	"C":     "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)",
	"UKW-B": "(AY) (BR) (CU) (DH) (EQ) (FS) (GL) (IP) (JX) (KN) (MO) (TZ) (VW)",
}

var navalNotches = map[string]string{
	"I":   "Q",
	"II":  "E",
	"III": "V",
	"IV":  "J",
	"V":   "Z",
}

func mustAlphabet(t *testing.T, chars string) *Alphabet {
	t.Helper()
	a, err := NewAlphabet(chars)
	if err != nil {
		t.Fatalf("NewAlphabet(%q): %v", chars, err)
	}
	return a
}

func mustPermutation(t *testing.T, cycles string, a *Alphabet) *Permutation {
	t.Helper()
	p, err := NewPermutation(cycles, a)
	if err != nil {
		t.Fatalf("NewPermutation(%q): %v", cycles, err)
	}
	return p
}

// navalCatalog builds every rotor of navalCycles over Upper.
func navalCatalog(t *testing.T) (*Alphabet, []*Rotor) {
	t.Helper()
	a := mustAlphabet(t, Upper)

	var rotors []*Rotor
	for _, name := range []string{"I", "II", "III", "IV", "V", "Beta", "Gamma", "B", "C", "UKW-B"} {
		p := mustPermutation(t, navalCycles[name], a)
		var (
			r   *Rotor
			err error
		)
		switch {
		case navalNotches[name] != "":
			r, err = NewMovingRotor(name, p, navalNotches[name])
		case name == "Beta" || name == "Gamma":
			r, err = NewFixedRotor(name, p)
		default:
			r, err = NewReflector(name, p)
		}
		if err != nil {
			t.Fatalf("rotor %s: %v", name, err)
		}
		rotors = append(rotors, r)
	}
	return a, rotors
}

// newMachine returns a machine with the named rotors inserted and set.
func newMachine(t *testing.T, numRotors, pawls int, names []string, positions string) *Machine {
	t.Helper()
	a, rotors := navalCatalog(t)
	m, err := NewMachine(a, numRotors, pawls, rotors)
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	if err := m.InsertRotors(names); err != nil {
		t.Fatalf("InsertRotors(%v): %v", names, err)
	}
	if err := m.SetRotors(positions); err != nil {
		t.Fatalf("SetRotors(%q): %v", positions, err)
	}
	return m
}

func wantErr(t *testing.T, err, kind error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil", kind)
	}
	if !errors.Is(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}
