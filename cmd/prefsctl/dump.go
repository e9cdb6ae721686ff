package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prefskit/prefskit/pkg/node"
)

var (
	dumpTag     string
	dumpCompact bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpTag, "tag", "", "Dump only nodes with this tag")
	cmd.Flags().BoolVar(&dumpCompact, "compact", false, "Compact output")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Human-readable dump of document contents",
		Long: `The dump command lists every node in a preference document with its
path and attributes.

Example:
  prefsctl dump people.xml
  prefsctl dump people.xml --tag person
  prefsctl dump people.xml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

type attrData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type nodeData struct {
	Path  string     `json:"path"`
	Attrs []attrData `json:"attrs,omitempty"`
}

func runDump(args []string) error {
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

	var allData []nodeData
	collectNodes(root, "/"+root.Tag(), &allData)

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file": path,
			"data": allData,
		})
	}

	for _, nd := range allData {
		printInfo("[%s]\n", nd.Path)
		if len(nd.Attrs) == 0 {
			if !dumpCompact {
				printInfo("  (no attributes)\n")
			}
		} else {
			for _, a := range nd.Attrs {
				printInfo("  %s = %q\n", a.Name, a.Value)
			}
		}
		if !dumpCompact {
			printInfo("\n")
		}
	}

	return nil
}

func collectNodes(n *node.Node, path string, out *[]nodeData) {
	if dumpTag == "" || n.Tag() == dumpTag {
		nd := nodeData{Path: path}
		for _, a := range n.Attrs() {
			nd.Attrs = append(nd.Attrs, attrData{Name: a.Name, Value: a.Value})
		}
		*out = append(*out, nd)
	}
	for i, child := range n.Children() {
		collectNodes(child, fmt.Sprintf("%s/%s[%d]", path, child.Tag(), i), out)
	}
}
