// Package session drives a machine over a stream of text.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/706f6c6c7578/enigma"
	"github.com/706f6c6c7578/enigma/internal/format"
	"github.com/706f6c6c7578/enigma/internal/setting"
)

// MaxLineSize bounds a single input line.
const MaxLineSize = 16 * 1024 * 1024

// Processor converts the messages of an input stream with one machine.
// Out receives converted text; Err receives one "Error: ..." line per
// failure and, with Verbose, progress notes.
type Processor struct {
	Machine   *enigma.Machine
	Out       io.Writer
	Err       io.Writer
	Verbose   bool
	BlockSize int
}

// New returns a Processor writing five-letter groups to out.
func New(m *enigma.Machine, out, errOut io.Writer) *Processor {
	return &Processor{
		Machine:   m,
		Out:       out,
		Err:       errOut,
		BlockSize: format.BlockSize,
	}
}

// Run processes a message stream. Lines before the first setting line
// are ignored. Each setting line reconfigures the machine and the lines
// after it are messages: spaces are dropped and the converted text is
// printed in groups. A bad setting line or message is reported and
// skipped, and processing carries on; the messages following a bad
// setting line are skipped too. Run returns the joined failures.
func (p *Processor) Run(r io.Reader) error {
	scanner := newScanner(r)
	var (
		errs       []error
		seen       bool
		configured bool
		lineNo     int
	)
	report := func(err error) {
		err = fmt.Errorf("line %d: %w", lineNo, err)
		errs = append(errs, err)
		fmt.Fprintf(p.Err, "Error: %v\n", err)
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if setting.IsSetting(line) {
			seen = true
			configured = false
			s, err := setting.Parse(line, p.Machine.NumRotors())
			if err == nil {
				err = s.Apply(p.Machine)
			}
			if err != nil {
				report(fmt.Errorf("bad setting: %w", err))
				continue
			}
			configured = true
			p.infof("line %d: %s", lineNo, s)
			continue
		}

		if !seen {
			continue
		}
		if !configured {
			report(errors.New("message skipped, no valid setting"))
			continue
		}

		msg := strings.Join(strings.Fields(line), "")
		out, err := p.Machine.ConvertString(msg)
		if err != nil {
			report(err)
			continue
		}
		if _, err := fmt.Fprintln(p.Out, format.Group(out, p.BlockSize)); err != nil {
			return p.fail(append(errs, fmt.Errorf("error writing output: %w", err)))
		}
	}
	if err := scanner.Err(); err != nil {
		return p.fail(append(errs, fmt.Errorf("line %d: error reading input: %w", lineNo+1, err)))
	}

	if !seen {
		err := fmt.Errorf("%w: no setting line found", enigma.ErrConfig)
		errs = append(errs, err)
		fmt.Fprintf(p.Err, "Error: %v\n", err)
	}
	return errors.Join(errs...)
}

// Translate converts every line of r with the machine as already set up,
// without setting lines. Lines are upper-cased when the alphabet has no
// lower case letters. Runes outside the alphabet pass through unchanged,
// unless BlockSize is positive, in which case they are dropped and the
// output is grouped.
func (p *Processor) Translate(r io.Reader) error {
	alpha := p.Machine.Alphabet()
	upper := !alpha.HasLower()

	scanner := newScanner(r)
	for scanner.Scan() {
		input := scanner.Text()
		if upper {
			input = strings.ToUpper(input)
		}

		var b strings.Builder
		for _, c := range input {
			if !alpha.Contains(c) {
				if p.BlockSize <= 0 {
					b.WriteRune(c)
				}
				continue
			}
			out, err := p.Machine.Convert(c)
			if err != nil {
				return err
			}
			b.WriteRune(out)
		}

		if _, err := fmt.Fprintln(p.Out, format.Group(b.String(), p.BlockSize)); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return scanner.Err()
}

// fail reports the last of errs, which ends the run, and joins them all.
func (p *Processor) fail(errs []error) error {
	fmt.Fprintf(p.Err, "Error: %v\n", errs[len(errs)-1])
	return errors.Join(errs...)
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return scanner
}

func (p *Processor) infof(f string, args ...interface{}) {
	if p.Verbose {
		fmt.Fprintf(p.Err, "info: "+f+"\n", args...)
	}
}
