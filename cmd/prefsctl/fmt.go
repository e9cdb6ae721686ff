package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prefskit/prefskit/pkg/node"
)

var fmtWrite bool

func init() {
	cmd := newFmtCmd()
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Rewrite the file in place instead of printing")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat a document with canonical indentation",
		Long: `The fmt command parses a preference document and re-serializes it with
the same indentation the library uses when writing preference files.

Example:
  prefsctl fmt people.xml
  prefsctl fmt people.xml --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	path := args[0]

	printVerbose("Opening document: %s\n", path)

	doc, err := node.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	root, err := doc.Root()
	if err != nil {
		return err
	}

	if fmtWrite {
		return root.WriteFile(path)
	}

	buf, err := root.Bytes()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(buf)
	return err
}
