package cmd

import (
	"context"
	"fmt"

	"github.com/jsphweid/mid2text/library"
	"github.com/jsphweid/mid2text/macro"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var libraryFormat string

func init() {
	libraryCmd.PersistentFlags().StringVar(&libraryFormat, "format", formatRaw, "output format (raw, json, yaml)")
	libraryCmd.AddCommand(librarySaveCmd, libraryGetCmd, libraryListCmd, libraryDeleteCmd, libraryMergeCmd)
	rootCmd.AddCommand(libraryCmd)
}

func withLibrary(fn func(ctx context.Context, store library.Store) error) error {
	store, err := library.Open(cfg.Library)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(context.Background(), store)
}

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Saves and recalls songs",
}

var librarySaveCmd = &cobra.Command{
	Use:   "save <name> <song>",
	Short: "Saves a song under a name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(ctx context.Context, store library.Store) error {
			e := library.NewEntry(args[0], args[1])
			if err := store.Put(ctx, e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", e.Name, e.ID)
			return nil
		})
	},
}

var libraryGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Prints a saved song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(ctx context.Context, store library.Store) error {
			e, err := store.Get(ctx, args[0])
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			return writeOutput(cmd.OutOrStdout(), libraryFormat, e.Macro, e)
		})
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists saved songs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(ctx context.Context, store library.Store) error {
			entries, err := store.List(ctx)
			if err != nil {
				return err
			}
			if libraryFormat != formatRaw {
				return writeOutput(cmd.OutOrStdout(), libraryFormat, "", entries)
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Name, e.Macro)
			}
			return nil
		})
	},
}

var libraryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Deletes a saved song",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(ctx context.Context, store library.Store) error {
			return store.Delete(ctx, args[0])
		})
	},
}

var libraryMergeCmd = &cobra.Command{
	Use:   "merge <name> <name>...",
	Short: "Merges saved songs",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withLibrary(func(ctx context.Context, store library.Store) error {
			var streams []string
			for _, name := range args {
				e, err := store.Get(ctx, name)
				if err != nil {
					return errors.Wrap(err, name)
				}
				streams = append(streams, e.Macro)
			}
			merged := macro.Merge(streams)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), merged)
			return err
		})
	},
}
