package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prefskit/prefskit/pkg/node"
	"github.com/prefskit/prefskit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate document structure",
		Long: `The validate command checks that a preference document is well formed,
has a single root node, and that every node tag fits the class-name limit.

Example:
  prefsctl validate people.xml
  prefsctl validate people.xml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
	return cmd
}

func runValidate(args []string) error {
	path := args[0]

	printVerbose("Validating document: %s\n", path)

	err := validateFile(path)

	result := map[string]interface{}{
		"file":  path,
		"valid": err == nil,
	}
	if err != nil {
		result["error"] = err.Error()
	}

	if jsonOut {
		if jerr := printJSON(result); jerr != nil {
			return jerr
		}
		return err
	}

	if err != nil {
		printInfo("%s: INVALID\n  %v\n", path, err)
		return err
	}

	printInfo("%s: VALID\n", path)
	return nil
}

func validateFile(path string) error {
	doc, err := node.ParseFile(path)
	if err != nil {
		return err
	}
	root, err := doc.Root()
	if err != nil {
		return err
	}
	return validateNode(root)
}

func validateNode(n *node.Node) error {
	if len(n.Tag()) > types.MaxClassName {
		return fmt.Errorf("tag %q exceeds the %d-character class-name limit",
			n.Tag(), types.MaxClassName)
	}
	for _, child := range n.Children() {
		if err := validateNode(child); err != nil {
			return err
		}
	}
	return nil
}
