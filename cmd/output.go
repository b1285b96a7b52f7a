package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/mid2text/clipboard"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	formatRaw  = "raw"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeOutput prints result in format. raw prints text as is.
func writeOutput(w io.Writer, format string, text string, result any) error {
	switch format {
	case formatRaw, "":
		_, err := fmt.Fprintln(w, text)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case formatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return errors.Wrap(err, "failed to format output")
		}
		_, err = w.Write(data)
		return err
	}
	return errors.Errorf("unsupported output format: %s", format)
}

// boolFlag prefers the flag when it was given on the command line.
func boolFlag(cmd *cobra.Command, name string, flagVal, fallback bool) bool {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return fallback
}

func stringFlag(cmd *cobra.Command, name string, flagVal, fallback string) string {
	if cmd.Flags().Changed(name) {
		return flagVal
	}
	return fallback
}

func maybeCopy(enabled bool, text string) error {
	if !enabled {
		return nil
	}
	logrus.Debugf("copying %d characters to clipboard", len(text))
	return clipboard.CopyToTerminal(text)
}
