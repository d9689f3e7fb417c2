package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// wikiCmd represents the wiki command
var wikiCmd = &cobra.Command{
	Use:   "wiki <entity>",
	Short: "Export a design dataset as a Lua data file",
	Long: `Writes the whole dataset of an entity (rooms, room_purchases, items, crew,
collections) to wiki_<entity>_data_<timestamp>.lua in the configured output
directory. The export is uploaded to the bucket when WIKI_UPLOAD is set and
recorded when a database is reachable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRuntime()
		if err != nil {
			return err
		}
		defer r.logg.Sync()
		r.connectDB()

		svc, err := r.wikiService()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout(r.cfg))
		defer cancel()

		export, err := svc.Export(ctx, args[0])
		if err != nil {
			r.logg.Error("Wiki export failed", zap.String("entity", args[0]), zap.Strings("entities", svc.Entities()))
			return err
		}

		rows := [][2]string{
			{"Entity", export.Entity},
			{"File", export.FileName},
			{"Records", strconv.Itoa(export.Records)},
			{"Bytes", strconv.Itoa(export.Bytes)},
		}
		if export.ObjectKey != "" {
			rows = append(rows, [2]string{"Uploaded", export.ObjectKey})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderReport("Wiki Export", rows))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(wikiCmd)
}
