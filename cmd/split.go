package cmd

import (
	"fmt"
	"strconv"

	"segment-audit/core/reconcile"

	"github.com/spf13/cobra"
)

var splitCmd = &cobra.Command{
	Use:   "split START END [SIZE]",
	Short: "Split a page range into segment-size chunks",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid start page %q", args[0])
		}
		end, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid end page %q", args[1])
		}
		if start < 1 || end < start {
			return fmt.Errorf("invalid page range %d-%d", start, end)
		}

		size := reconcile.DefaultSegmentSize
		if len(args) == 3 {
			if size, err = strconv.Atoi(args[2]); err != nil {
				return fmt.Errorf("invalid segment size %q", args[2])
			}
		}

		for _, chunk := range reconcile.SplitGap(reconcile.Gap{Start: start, End: end}, size) {
			fmt.Fprintf(cmd.OutOrStdout(), "pages %d-%d\n", chunk.Start, chunk.End)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(splitCmd)
}
