package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createInstruments instrumentFlags
	createRelative    bool
	createCopy        bool
	createFormat      string
)

func init() {
	// free -h for --hat
	createCmd.Flags().Bool("help", false, "help for create")
	createInstruments = newInstrumentFlags(createCmd.Flags())
	createCmd.Flags().BoolVarP(&createRelative, "relative", "r", false, "move out of range notes into range by octaves")
	createCmd.Flags().BoolVarP(&createCopy, "copy", "c", false, "copy the created song to the clipboard")
	createCmd.Flags().StringVar(&createFormat, "format", "", "output format (raw, json, yaml)")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:     "create",
	Aliases: []string{"c"},
	Short:   "Creates a song from midi files",
	Long: `Creates a song from midi files. Every file is read as one instrument,
e.g. mid2text create -p melody.mid -b drums.mid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(createInstruments.paths()) == 0 {
			return cmd.Help()
		}
		fold := boolFlag(cmd, "relative", createRelative, cfg.Relative)
		toClipboard := boolFlag(cmd, "copy", createCopy, cfg.Copy)
		format := stringFlag(cmd, "format", createFormat, cfg.Format)

		s, sources, err := buildSong(createInstruments)
		if err != nil {
			return err
		}
		res, err := renderSong(s, sources, fold)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if res.Macro == "" {
			fmt.Fprintln(out, "Midi file is empty")
			return nil
		}
		if err := writeOutput(out, format, res.Macro, res); err != nil {
			return err
		}
		return maybeCopy(toClipboard, res.Macro)
	},
}
