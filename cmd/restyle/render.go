package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/restyle/dom/domdbg"
	"github.com/spf13/cobra"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var asHTML, tree bool
	cmd := &cobra.Command{
		Use:   "render <node.yaml>",
		Short: "Render the style attribute of a node",
		Long: `Render resolves the static and bound styles of a render node and prints
them as a style attribute, the way server-side rendering does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			e, owner, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			n, tag, err := readNodeFile(args[0], owner, nil)
			if err != nil {
				return err
			}
			fragment := e.StyleString(n)
			if tree {
				fmt.Fprintln(out, domdbg.PrintNode(n))
			}
			printFragment(out, tag, fragment, asHTML)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print an element instead of the attribute only")
	cmd.Flags().BoolVar(&tree, "tree", false, "print the style state of the node")
	return cmd
}

func printFragment(w io.Writer, tag, fragment string, asHTML bool) {
	if !asHTML {
		fmt.Fprintln(w, fragment)
		return
	}
	if fragment == "" {
		fmt.Fprintf(w, "<%s></%s>\n", tag, tag)
		return
	}
	fmt.Fprintf(w, "<%s %s></%s>\n", tag, fragment, tag)
}
