package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/706f6c6c7578/enigma/internal/config"
	"github.com/706f6c6c7578/enigma/internal/session"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run CONFIG [INPUT [OUTPUT]]",
		Short: "Process a message file with setting lines",
		Long: `Configure a machine from CONFIG and process the messages in INPUT
(default: stdin), writing the results to OUTPUT (default: stdout).

Each line starting with "*" is a setting:

  * B Beta III IV I AXLE [RINGS] [(HQ) (EX) ...]

and the lines after it are messages converted with that setting and
printed in groups of five. A bad setting or message is reported and
processing continues with the next one.`,
		Args: cobra.RangeArgs(1, 3),
		RunE: runMessages,
	}
}

func runMessages(cmd *cobra.Command, args []string) (err error) {
	c, err := config.LoadFile(args[0])
	if err != nil {
		return err
	}
	m, err := c.NewMachine()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if len(args) > 1 {
		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("could not open %s: %w", args[1], err)
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if len(args) > 2 {
		f, err := os.Create(args[2])
		if err != nil {
			return fmt.Errorf("could not open %s: %w", args[2], err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("could not write %s: %w", args[2], cerr)
			}
		}()
		out = f
	}

	p := session.New(m, out, cmd.ErrOrStderr())
	p.Verbose, _ = cmd.Flags().GetBool("verbose")
	if err := p.Run(in); err != nil {
		return fmt.Errorf("%w: %v", errReported, err)
	}
	return nil
}
