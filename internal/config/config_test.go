package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/706f6c6c7578/enigma"
)

const hiawathaIn = "FROMHISSHOULDERHIAWATHATOOKTHECAMERAOFROSEWOOD"
const hiawathaOut = "QVPQSOKOILPUBKJZPISFXDWBHCNSCXNUOAATZXSRCFYDGU"

// m4Message inserts B Beta III IV I at AXLE with the HIAWATHA plugboard
// and converts hiawathaIn.
func m4Message(t *testing.T, m *enigma.Machine, reflector string) string {
	t.Helper()
	if err := m.InsertRotors([]string{reflector, "Beta", "III", "IV", "I"}); err != nil {
		t.Fatal(err)
	}
	if err := m.SetRotors("AXLE"); err != nil {
		t.Fatal(err)
	}
	p, err := enigma.NewPermutation("(HQ) (EX) (IP) (TR) (BY)", m.Alphabet())
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetPlugboard(p); err != nil {
		t.Fatal(err)
	}
	out, err := m.ConvertString(hiawathaIn)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestLoadConf(t *testing.T) {
	c, err := LoadFile("testdata/default.conf")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Alphabet != enigma.Upper || c.NumRotors != 5 || c.Pawls != 3 {
		t.Fatalf("header: %q %d %d", c.Alphabet, c.NumRotors, c.Pawls)
	}
	if len(c.Catalog) != 12 {
		t.Fatalf("catalog has %d rotors, want 12", len(c.Catalog))
	}

	vi := c.Catalog[5]
	if vi.Name != "VI" || vi.Type != TypeMoving || vi.Notches != "ZM" {
		t.Errorf("rotor VI: %+v", vi)
	}
	b := c.Catalog[10]
	if b.Name != "B" || b.Type != TypeReflector || strings.Count(b.Cycles, "(") != 13 {
		t.Errorf("reflector B spanning two lines: %+v", b)
	}

	m, err := c.NewMachine()
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	if got := m4Message(t, m, "B"); got != hiawathaOut {
		t.Fatalf("got %s, want %s", got, hiawathaOut)
	}
}

func TestLoadYAML(t *testing.T) {
	c, err := LoadFile("testdata/naval.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Catalog[3].Type != TypeMoving {
		t.Errorf("short type not normalized: %q", c.Catalog[3].Type)
	}

	m, err := c.NewMachine()
	if err != nil {
		t.Fatalf("NewMachine: %v", err)
	}
	if got := m4Message(t, m, "B"); got != hiawathaOut {
		t.Fatalf("got %s, want %s", got, hiawathaOut)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	c, err := Preset("m4")
	if err != nil {
		t.Fatal(err)
	}
	data, err := c.YAML()
	if err != nil {
		t.Fatal(err)
	}
	back, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v\n%s", err, data)
	}
	if back.NumRotors != c.NumRotors || len(back.Catalog) != len(c.Catalog) {
		t.Fatalf("round trip lost data:\n%s", data)
	}
	m, err := back.NewMachine()
	if err != nil {
		t.Fatal(err)
	}
	if got := m4Message(t, m, "BThin"); got != hiawathaOut {
		t.Fatalf("got %s, want %s", got, hiawathaOut)
	}
}

func TestPresets(t *testing.T) {
	for _, name := range Presets() {
		t.Run(name, func(t *testing.T) {
			c, err := Preset(name)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := c.NewMachine(); err != nil {
				t.Fatalf("NewMachine: %v", err)
			}
		})
	}

	c, _ := Preset("m3")
	m, err := c.NewMachine()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.InsertRotors([]string{"B", "I", "II", "III"}); err != nil {
		t.Fatal(err)
	}
	_ = m.SetRotors("AAA")
	if got, _ := m.ConvertString("AAAAA"); got != "BDZGO" {
		t.Fatalf("m3 AAAAA = %s, want BDZGO", got)
	}

	_, err = Preset("m5")
	if !errors.Is(err, enigma.ErrConfig) {
		t.Fatalf("unknown preset: %v", err)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		conf string
		kind error
	}{
		{"empty", "", enigma.ErrConfig},
		{"no rotor count", "ABC", enigma.ErrConfig},
		{"bad rotor count", "ABC x 1", enigma.ErrConfig},
		{"no pawl count", "ABC 3", enigma.ErrConfig},
		{"bad pawl count", "ABC 3 y", enigma.ErrConfig},
		{"truncated rotor", "ABC 2 1 I", enigma.ErrConfig},
		{"unknown type", "ABC 2 1 I Q (ABC)", enigma.ErrConfig},
		{"notched reflector", "ABC 2 1 B RA (ABC)", enigma.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.conf))
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestNewMachineRejects(t *testing.T) {
	tests := []struct {
		name string
		conf string
		kind error
	}{
		{"duplicate alphabet", "ABCA 2 1 B R (AB)", enigma.ErrConfig},
		{"bad cycles", "ABC 2 1 B R (AB)C)", enigma.ErrParse},
		{"foreign symbol", "ABC 2 1 B R (AD)", enigma.ErrInvalidSymbol},
		{"foreign notch", "ABC 2 1 B R (ABC) I MZ (AB)", enigma.ErrInvalidSymbol},
		{"reflector not derangement", "ABC 2 1 B R (AB) I MA (AB)", enigma.ErrConfig},
		{"too few rotors", "ABC 3 1 B R (ABC) I MA (AB)", enigma.ErrConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(strings.NewReader(tt.conf))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			_, err = c.NewMachine()
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
		})
	}
}

func TestParseYAMLRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "alphabet: [ABC"},
		{"no alphabet", "rotors: 2\npawls: 1\n"},
		{"bad type", "alphabet: ABC\ncatalog:\n  - name: X\n    type: spinning\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.yaml))
			if !errors.Is(err, enigma.ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestYAMLNewMachineRejects(t *testing.T) {
	const head = "alphabet: ABC\nrotors: 2\npawls: 0\ncatalog:\n  - name: G\n    type: fixed\n"
	tests := []struct {
		name    string
		catalog string
	}{
		{"cycles and wiring", "  - name: B\n    type: reflector\n    cycles: (ABC)\n    wiring: BCA\n"},
		{"notched reflector", "  - name: B\n    type: reflector\n    notches: A\n    cycles: (ABC)\n"},
		{"notched fixed rotor", "  - name: B\n    type: reflector\n    cycles: (ABC)\n  - name: F\n    type: fixed\n    notches: B\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseYAML([]byte(head + tt.catalog))
			if err != nil {
				t.Fatal(err)
			}
			if _, err := c.NewMachine(); !errors.Is(err, enigma.ErrConfig) {
				t.Fatalf("expected ErrConfig, got %v", err)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("testdata/missing.conf"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
