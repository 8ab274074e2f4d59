// Package config reads machine descriptions: the alphabet, the number of
// rotor slots and pawls, and the catalog of rotors a machine may use.
//
// Two file formats are understood. The conf format is a stream of
// whitespace separated tokens:
//
//	ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	5 3
//	I     MQ  (AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)
//	Beta  N   (ALBEVFCYODJWUGNMQTZSKPR) (HIX)
//	B     R   (AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP)
//	          (RX) (SZ) (TV)
//
// where the type token is M followed by the notches, N for a fixed rotor
// or R for a reflector. The YAML format carries the same information and
// also accepts wiring tables in place of cycles.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/706f6c6c7578/enigma"
)

// Rotor types as written in YAML.
const (
	TypeMoving    = "moving"
	TypeFixed     = "fixed"
	TypeReflector = "reflector"
)

// RotorSpec describes one catalog rotor. Exactly one of Cycles and Wiring
// is set.
type RotorSpec struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Notches string `yaml:"notches,omitempty"`
	Cycles  string `yaml:"cycles,omitempty"`
	Wiring  string `yaml:"wiring,omitempty"`
}

// Config is a machine description.
type Config struct {
	Alphabet  string      `yaml:"alphabet"`
	NumRotors int         `yaml:"rotors"`
	Pawls     int         `yaml:"pawls"`
	Catalog   []RotorSpec `yaml:"catalog"`
}

// LoadFile reads a configuration file, choosing the format by extension.
func LoadFile(path string) (*Config, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", path, err)
		}
		return ParseYAML(data)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the conf format.
func Parse(r io.Reader) (*Config, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read configuration: %w", err)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty configuration", enigma.ErrConfig)
	}
	c := &Config{Alphabet: tokens[0]}

	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: rotor count not found", enigma.ErrConfig)
	}
	n, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("%w: rotor count %q is not a number", enigma.ErrConfig, tokens[1])
	}
	c.NumRotors = n

	if len(tokens) < 3 {
		return nil, fmt.Errorf("%w: pawl count not found", enigma.ErrConfig)
	}
	n, err = strconv.Atoi(tokens[2])
	if err != nil {
		return nil, fmt.Errorf("%w: pawl count %q is not a number", enigma.ErrConfig, tokens[2])
	}
	c.Pawls = n

	tokens = tokens[3:]
	for len(tokens) > 0 {
		if len(tokens) < 2 {
			return nil, fmt.Errorf("%w: bad rotor description: configuration truncated after %q", enigma.ErrConfig, tokens[0])
		}
		spec := RotorSpec{Name: tokens[0]}
		typeNotches := tokens[1]
		switch typeNotches[0] {
		case 'M':
			spec.Type = TypeMoving
			spec.Notches = typeNotches[1:]
		case 'N':
			spec.Type = TypeFixed
		case 'R':
			spec.Type = TypeReflector
		default:
			return nil, fmt.Errorf("%w: %q is not a type of rotor", enigma.ErrConfig, typeNotches[:1])
		}
		if spec.Type != TypeMoving && len(typeNotches) > 1 {
			return nil, fmt.Errorf("%w: rotor %s: only moving rotors have notches", enigma.ErrConfig, spec.Name)
		}

		tokens = tokens[2:]
		var cycles []string
		for len(tokens) > 0 && strings.HasPrefix(tokens[0], "(") {
			cycles = append(cycles, tokens[0])
			tokens = tokens[1:]
		}
		spec.Cycles = strings.Join(cycles, " ")
		c.Catalog = append(c.Catalog, spec)
	}

	return c, nil
}

// ParseYAML reads the YAML format.
func ParseYAML(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", enigma.ErrConfig, err)
	}
	if c.Alphabet == "" {
		return nil, fmt.Errorf("%w: alphabet not found", enigma.ErrConfig)
	}
	for i := range c.Catalog {
		t, err := normalizeType(c.Catalog[i].Type)
		if err != nil {
			return nil, fmt.Errorf("rotor %s: %w", c.Catalog[i].Name, err)
		}
		c.Catalog[i].Type = t
	}
	return &c, nil
}

// YAML encodes c in the YAML format.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func normalizeType(t string) (string, error) {
	switch strings.ToLower(t) {
	case TypeMoving, "m":
		return TypeMoving, nil
	case TypeFixed, "n":
		return TypeFixed, nil
	case TypeReflector, "r":
		return TypeReflector, nil
	}
	return "", fmt.Errorf("%w: %q is not a type of rotor", enigma.ErrConfig, t)
}

// Rotors builds the alphabet and the rotor catalog.
func (c *Config) Rotors() (*enigma.Alphabet, []*enigma.Rotor, error) {
	alpha, err := enigma.NewAlphabet(c.Alphabet)
	if err != nil {
		return nil, nil, err
	}

	rotors := make([]*enigma.Rotor, 0, len(c.Catalog))
	for _, spec := range c.Catalog {
		r, err := spec.build(alpha)
		if err != nil {
			return nil, nil, fmt.Errorf("rotor %s: %w", spec.Name, err)
		}
		rotors = append(rotors, r)
	}
	return alpha, rotors, nil
}

// NewMachine builds the machine described by c, with no rotors inserted.
func (c *Config) NewMachine() (*enigma.Machine, error) {
	alpha, rotors, err := c.Rotors()
	if err != nil {
		return nil, err
	}
	return enigma.NewMachine(alpha, c.NumRotors, c.Pawls, rotors)
}

func (s RotorSpec) build(alpha *enigma.Alphabet) (*enigma.Rotor, error) {
	var (
		perm *enigma.Permutation
		err  error
	)
	switch {
	case s.Cycles != "" && s.Wiring != "":
		return nil, fmt.Errorf("%w: both cycles and wiring given", enigma.ErrConfig)
	case s.Notches != "" && s.Type != TypeMoving:
		return nil, fmt.Errorf("%w: only moving rotors have notches", enigma.ErrConfig)
	case s.Wiring != "":
		perm, err = enigma.NewPermutationFromWiring(s.Wiring, alpha)
	default:
		perm, err = enigma.NewPermutation(s.Cycles, alpha)
	}
	if err != nil {
		return nil, err
	}

	switch s.Type {
	case TypeMoving:
		return enigma.NewMovingRotor(s.Name, perm, s.Notches)
	case TypeFixed:
		return enigma.NewFixedRotor(s.Name, perm)
	case TypeReflector:
		return enigma.NewReflector(s.Name, perm)
	}
	return nil, fmt.Errorf("%w: %q is not a type of rotor", enigma.ErrConfig, s.Type)
}
