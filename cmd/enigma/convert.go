package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/706f6c6c7578/enigma"
	"github.com/706f6c6c7578/enigma/internal/session"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert text with one machine setting",
		Long: `Convert the lines of stdin (or --text) with a single setting given by
flags. Characters outside the alphabet are copied unchanged unless
--group is set, in which case they are dropped.

  echo "HELLO WORLD" | enigma convert --preset m4 --reflector BThin \
      --rotors Beta,III,IV,I --positions AXLE --plugboard "HQ EX IP TR BY"`,
		Args: cobra.NoArgs,
		RunE: runConvert,
	}

	addMachineFlags(cmd)
	cmd.Flags().StringP("reflector", "r", "B", "Reflector name")
	cmd.Flags().String("rotors", "I,II,III", "Rotors after the reflector, leftmost first (e.g. I,II,III)")
	cmd.Flags().String("positions", "", "Rotor positions, one symbol per rotor (default: all at the first symbol)")
	cmd.Flags().String("rings", "", "Ring settings, one symbol per rotor (default: all at the first symbol)")
	cmd.Flags().String("plugboard", "", `Plugboard pairs ("AB CD EF") or cycles ("(AB) (CDE)")`)
	cmd.Flags().StringP("text", "t", "", "Text to convert instead of stdin")
	cmd.Flags().IntP("group", "g", 0, "Print output in groups of this size")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, err := c.NewMachine()
	if err != nil {
		return err
	}

	reflector, _ := cmd.Flags().GetString("reflector")
	rotors, _ := cmd.Flags().GetString("rotors")
	names := append([]string{reflector}, strings.Split(rotors, ",")...)
	if err := m.InsertRotors(names); err != nil {
		return err
	}

	if positions, _ := cmd.Flags().GetString("positions"); positions != "" {
		if err := m.SetRotors(positions); err != nil {
			return fmt.Errorf("positions: %w", err)
		}
	}
	if rings, _ := cmd.Flags().GetString("rings"); rings != "" {
		if err := m.SetRingSetting(rings); err != nil {
			return fmt.Errorf("rings: %w", err)
		}
	}

	plugboard, _ := cmd.Flags().GetString("plugboard")
	cycles, err := plugboardCycles(plugboard)
	if err != nil {
		return err
	}
	p, err := enigma.NewPermutation(cycles, m.Alphabet())
	if err != nil {
		return fmt.Errorf("plugboard: %w", err)
	}
	if err := m.SetPlugboard(p); err != nil {
		return err
	}

	if v, _ := cmd.Flags().GetBool("verbose"); v {
		fmt.Fprintf(cmd.ErrOrStderr(), "info: rotors %v at %s, plugboard %s\n", m.Rotors(), m.Positions(), m.Plugboard())
	}

	s := session.New(m, cmd.OutOrStdout(), cmd.ErrOrStderr())
	s.BlockSize, _ = cmd.Flags().GetInt("group")

	in := cmd.InOrStdin()
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		in = strings.NewReader(text)
	}
	return s.Translate(in)
}

// plugboardCycles accepts either cycle notation or space separated pairs
// of symbols and returns cycle notation.
func plugboardCycles(s string) (string, error) {
	if strings.Contains(s, "(") {
		return s, nil
	}

	pairs := strings.Fields(s)
	cycles := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		if len([]rune(pair)) != 2 {
			return "", fmt.Errorf("%w: invalid plugboard pair: %s", enigma.ErrParse, pair)
		}
		cycles = append(cycles, "("+pair+")")
	}
	return strings.Join(cycles, " "), nil
}
