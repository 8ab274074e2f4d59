// Command enigma runs a rotor cipher machine over text.
//
//	enigma run default.conf input.txt output.txt
//	echo HELLO | enigma convert --preset m3 --rotors I,II,III --positions ADU
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/706f6c6c7578/enigma/internal/config"
)

// errReported marks failures that were already printed line by line.
var errReported = errors.New("errors in input")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "enigma",
		Short:         "Encrypt and decrypt with an Enigma-style rotor machine",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "Report each setting line on stderr")

	root.AddCommand(newRunCmd(), newConvertCmd(), newCatalogCmd())
	return root
}

// loadConfig reads --config if given and falls back to --preset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFile(path)
	}
	preset, _ := cmd.Flags().GetString("preset")
	return config.Preset(preset)
}

func addMachineFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "", "Machine configuration file (.conf or .yaml)")
	cmd.Flags().StringP("preset", "p", "m3", fmt.Sprintf("Built-in machine %v, used without --config", config.Presets()))
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print a machine configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if _, err := c.NewMachine(); err != nil {
				return err
			}
			data, err := c.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addMachineFlags(cmd)
	return cmd
}
