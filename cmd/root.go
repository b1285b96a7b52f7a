package cmd

import (
	"github.com/jsphweid/mid2text/config"
	"github.com/jsphweid/mid2text/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   constants.AppName,
	Short: "Converts midi files into note macros",
	Long: `mid2text converts midi files into text macros for the note placement
language, one character per note with digits and periods for the time in
between. Streams of several instruments can be merged into one song.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		logrus.Debugf("config: %v", cfg.Path())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level := logrus.InfoLevel
	if l, err := logrus.ParseLevel(constants.GetLogLevel()); err == nil {
		level = l
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
