package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dhamidi/xrv/format"
	"github.com/dhamidi/xrv/xrv"
	"github.com/spf13/cobra"
)

func newDumpCmd(cfg *config) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Parse an XRV file and dump its tables, styles and records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, err := xrv.Open(args[0])
			if err != nil {
				return err
			}
			defer reader.Close()

			doc, err := format.Collect(reader)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			slog.Debug("parsed document",
				"file", args[0],
				"lines", reader.Line(),
				"jumps", len(doc.Jumps),
				"tables", len(doc.Tables),
				"styles", len(doc.Styles),
				"records", len(doc.Records))

			var encoder format.Encoder
			switch dumpFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "line":
				encoder = format.NewLineEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s (expected json or line)", dumpFormat)
			}

			if err := encoder.Encode(doc); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if dumpFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", cfg.Format, "output format (json, line)")

	return cmd
}
