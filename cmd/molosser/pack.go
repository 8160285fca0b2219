package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"molosser/internal/driver"
)

var packCmd = &cobra.Command{
	Use:   "pack [flags] <tree.json>",
	Short: "Convert a JSON template tree to the packed msgpack form",
	Args:  cobra.ExactArgs(1),
	RunE:  runPack,
}

func init() {
	packCmd.Flags().StringP("out", "o", "", "output file (default: input with .msgpack extension)")
}

func runPack(cmd *cobra.Command, args []string) error {
	in := args[0]
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".msgpack"
	}
	if err := driver.PackTree(in, out); err != nil {
		return err
	}
	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "packed %s -> %s\n", in, out)
	}
	return nil
}
