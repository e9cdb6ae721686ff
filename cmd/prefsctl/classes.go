package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/prefskit/prefskit/pkg/node"
)

func init() {
	rootCmd.AddCommand(newClassesCmd())
}

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes <file>",
		Short: "List the class names a document uses",
		Long: `The classes command lists the distinct node tags in a preference
document with their occurrence counts. Each tag is a class name a context
would need registered before it could restore the document.

Example:
  prefsctl classes people.xml
  prefsctl classes people.xml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(args)
		},
	}
	return cmd
}

func runClasses(args []string) error {
	path := args[0]

	doc, err := node.ParseFile(path)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	root, err := doc.Root()
	if err != nil {
		return err
	}

	counts := map[string]int{}
	countTags(root, counts)

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"classes": counts,
		})
	}

	for _, name := range names {
		printInfo("%-24s %d\n", name, counts[name])
	}
	return nil
}

func countTags(n *node.Node, counts map[string]int) {
	counts[n.Tag()]++
	for _, child := range n.Children() {
		countTags(child, counts)
	}
}
