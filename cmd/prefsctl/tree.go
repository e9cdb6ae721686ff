package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prefskit/prefskit/pkg/node"
)

var (
	treeDepth int
	treeAttrs bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&treeAttrs, "attrs", false, "Show attributes too")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Display node tree structure",
		Long: `The tree command displays the hierarchical node structure of a
preference document.

Example:
  prefsctl tree people.xml
  prefsctl tree people.xml --attrs --depth 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
	return cmd
}

type treeEntry struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Children []treeEntry       `json:"children,omitempty"`
}

func runTree(args []string) error {
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

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file": path,
			"root": buildTreeEntry(root, 1),
		})
	}

	printTree(root, 0)
	return nil
}

func buildTreeEntry(n *node.Node, depth int) treeEntry {
	e := treeEntry{Tag: n.Tag()}
	if attrs := n.Attrs(); len(attrs) > 0 {
		e.Attrs = make(map[string]string, len(attrs))
		for _, a := range attrs {
			e.Attrs[a.Name] = a.Value
		}
	}
	if treeDepth > 0 && depth >= treeDepth {
		return e
	}
	for _, child := range n.Children() {
		e.Children = append(e.Children, buildTreeEntry(child, depth+1))
	}
	return e
}

func printTree(n *node.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	line := fmt.Sprintf("%s<%s>", indent, n.Tag())
	if treeAttrs {
		for _, a := range n.Attrs() {
			line += fmt.Sprintf(" %s=%q", a.Name, a.Value)
		}
	}
	printInfo("%s\n", line)
	if treeDepth > 0 && depth+1 >= treeDepth {
		if n.Len() > 0 {
			printInfo("%s  ... (%d children)\n", indent, n.Len())
		}
		return
	}
	for _, child := range n.Children() {
		printTree(child, depth+1)
	}
}
