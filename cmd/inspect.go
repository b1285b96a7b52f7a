package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/mid2text/macro"
	"github.com/jsphweid/mid2text/model"
	"github.com/spf13/cobra"
)

var inspectFormat string

func init() {
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "table", "output format (table, json, yaml)")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:     "inspect <song>",
	Aliases: []string{"decode"},
	Short:   "Lists the events of a song with their ticks",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := decodeResponse(args[0])
		if inspectFormat == "table" {
			return printEvents(cmd.OutOrStdout(), res)
		}
		return writeOutput(cmd.OutOrStdout(), inspectFormat, "", res)
	},
}

func decodeResponse(stream string) model.DecodeResponse {
	events := macro.Decode(stream)
	res := model.DecodeResponse{
		Events:   make([]model.EventView, 0, len(events)),
		Duration: macro.Duration(stream),
	}
	for _, e := range events {
		res.Events = append(res.Events, e.View())
	}
	return res
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

// printEvents prints one line per tick with every character fired on it.
func printEvents(w io.Writer, res model.DecodeResponse) error {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%8s  %s", "tick", "events")))
	i := 0
	for i < len(res.Events) {
		tick := res.Events[i].Tick
		var chars []string
		for i < len(res.Events) && res.Events[i].Tick == tick {
			chars = append(chars, res.Events[i].Char)
			i++
		}
		fmt.Fprintf(w, "%8d  %s\n", tick, strings.Join(chars, " "))
	}
	_, err := fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("%d events, %d ticks", len(res.Events), res.Duration)))
	return err
}
