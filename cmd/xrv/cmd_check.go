package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/xrv/xrv"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check an XRV file and report every malformed line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read file: %w", err)
			}

			issues := xrv.Check(data)
			for _, issue := range issues {
				if issue.Byte >= 0 {
					fmt.Printf("%s:%d:%d: %s\n", args[0], issue.Line, issue.Byte, issue.Message)
				} else {
					fmt.Printf("%s:%d: %s\n", args[0], issue.Line, issue.Message)
				}
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d malformed lines", len(issues))
			}
			return nil
		},
	}
}
