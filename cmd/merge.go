package cmd

import (
	"github.com/jsphweid/mid2text/macro"
	"github.com/jsphweid/mid2text/model"
	"github.com/spf13/cobra"
)

var (
	mergeCopy   bool
	mergeFormat string
)

func init() {
	mergeCmd.Flags().BoolVarP(&mergeCopy, "copy", "c", false, "copy the merged song to the clipboard")
	mergeCmd.Flags().StringVar(&mergeFormat, "format", formatRaw, "output format (raw, json, yaml)")
	rootCmd.AddCommand(mergeCmd)
}

var mergeCmd = &cobra.Command{
	Use:     "merge <song> <song>...",
	Aliases: []string{"m"},
	Short:   "Merges two or more songs",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		merged := macro.Merge(args)
		res := model.MacroResponse{Macro: merged}
		if err := writeOutput(cmd.OutOrStdout(), mergeFormat, merged, res); err != nil {
			return err
		}
		return maybeCopy(boolFlag(cmd, "copy", mergeCopy, cfg.Copy), merged)
	},
}
