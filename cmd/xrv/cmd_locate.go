package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dhamidi/xrv/xrv"
	"github.com/spf13/cobra"
)

func newLocateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locate <file> <name>",
		Short: "Resolve a name through the jump index and print its region",
		Long: "locate parses lines until the jump index names the requested region,\n" +
			"then reads that region with one positioned read instead of scanning\n" +
			"the rest of the file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, name := args[0], args[1]

			reader, err := xrv.Open(path)
			if err != nil {
				return err
			}
			defer reader.Close()

			for {
				if entry, ok := reader.Locate(name); ok {
					slog.Debug("located region",
						"name", name, "seek", entry.Seek, "length", entry.Length,
						"lines_scanned", reader.Line())
					region, err := reader.ReadRegion(name)
					if err != nil {
						return err
					}
					_, err = os.Stdout.Write(region)
					return err
				}

				if _, err := reader.Next(); err == io.EOF {
					return fmt.Errorf("%q not found in the jump index of %s", name, path)
				} else if err != nil {
					return fmt.Errorf("parse %s: %w", path, err)
				}
			}
		},
	}
}
