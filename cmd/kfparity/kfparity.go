// Command kfparity inspects Keccak-f column parities from the shell: packing and unpacking the single-word encoding,
// reducing slices, and transposing parity between its slice-major and sheet-major forms.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/keccakf/parity"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "kfparity",
		Short:         "Inspect Keccak-f column parities",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(packCmd(), unpackCmd(), sliceCmd(), sheetsCmd(), slicesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func packCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack row...",
		Short: "Pack per-slice parity rows into one 64-bit word",
		Args:  cobra.RangeArgs(1, parity.MaxPackedSlices),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parseRows(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), parity.PackParity(rows))
			return nil
		},
	}
}

func unpackCmd() *cobra.Command {
	var laneSize int
	cmd := &cobra.Command{
		Use:   "unpack packed",
		Short: "Unpack a packed parity word into per-slice rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if laneSize < 1 || laneSize > parity.MaxPackedSlices {
				return fmt.Errorf("lane size must be in [1, %d], got %d", parity.MaxPackedSlices, laneSize)
			}
			packed, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 64)
			if err != nil {
				return fmt.Errorf("invalid packed parity %q: %w", args[0], err)
			}

			rows := make([]parity.RowValue, laneSize)
			parity.UnpackParity(parity.PackedParity(packed), rows)
			fmt.Fprintln(cmd.OutOrStdout(), formatRows(rows))
			return nil
		},
	}
	cmd.Flags().IntVarP(&laneSize, "lane-size", "w", parity.MaxPackedSlices, "lane size the word was packed for")
	return cmd
}

func sliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice value",
		Short: "Reduce a 25-bit slice to its column parity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(strings.TrimPrefix(args[0], "0x"), 16, 32)
			if err != nil || v > 0x1ffffff {
				return fmt.Errorf("invalid slice value %q", args[0])
			}

			s := parity.SliceValue(v)
			for y := 0; y < 5; y++ {
				fmt.Fprintf(cmd.OutOrStdout(), "row %d:  %05b\n", y, s.Row(y))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "parity: %05b\n", s.Parity())
			return nil
		},
	}
}

func sheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets row...",
		Short: "Transpose slice-major parity rows into five parity sheets",
		Args:  cobra.RangeArgs(1, 64),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := parseRows(args)
			if err != nil {
				return err
			}

			var sheets [5]parity.LaneValue
			parity.SlicesToSheets(rows, &sheets)
			for x, lane := range sheets {
				fmt.Fprintf(cmd.OutOrStdout(), "sheet %d: %0*b\n", x, len(rows), lane)
			}
			return nil
		},
	}
}

func slicesCmd() *cobra.Command {
	var laneSize int
	cmd := &cobra.Command{
		Use:   "slices sheet0 sheet1 sheet2 sheet3 sheet4",
		Short: "Transpose five parity sheets back into slice-major parity rows",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if laneSize < 1 || laneSize > 64 {
				return fmt.Errorf("lane size must be in [1, 64], got %d", laneSize)
			}

			var sheets [5]parity.LaneValue
			for x, arg := range args {
				v, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 64)
				if err != nil {
					return fmt.Errorf("invalid sheet %q: %w", arg, err)
				}
				sheets[x] = parity.LaneValue(v)
			}

			rows := make([]parity.RowValue, laneSize)
			parity.SheetsToSlices(&sheets, rows)
			fmt.Fprintln(cmd.OutOrStdout(), formatRows(rows))
			return nil
		},
	}
	cmd.Flags().IntVarP(&laneSize, "lane-size", "w", 64, "lane size of the sheets")
	return cmd
}

func parseRows(args []string) ([]parity.RowValue, error) {
	rows := make([]parity.RowValue, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 8)
		if err != nil || v > 31 {
			return nil, fmt.Errorf("invalid parity row %q: want an integer in [0, 31]", arg)
		}
		rows[i] = parity.RowValue(v)
	}
	return rows, nil
}

func formatRows(rows []parity.RowValue) string {
	parts := make([]string, len(rows))
	for z, row := range rows {
		parts[z] = strconv.Itoa(int(row))
	}
	return strings.Join(parts, " ")
}
