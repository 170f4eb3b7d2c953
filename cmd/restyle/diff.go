package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/restyle/dom/domdbg"
	"github.com/npillmayer/restyle/dom/w3cdom"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func diffCmd(opts *globalOptions) *cobra.Command {
	var dot string
	cmd := &cobra.Command{
		Use:   "diff <old.yaml> <new.yaml>",
		Short: "Show the style patches of a mount and a re-render",
		Long: `Diff mounts the first node onto a fresh element, then re-renders it as
the second node. It prints both patches and the resulting element.
Properties which no longer apply show up as resets.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			e, owner, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			old, tag, err := readNodeFile(args[0], owner, nil)
			if err != nil {
				return err
			}
			n, _, err := readNodeFile(args[1], owner, nil)
			if err != nil {
				return err
			}
			elem := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
			handle := w3cdom.WrapHTML(elem)
			old.Handle, n.Handle = handle, handle
			fmt.Fprintln(out, domdbg.PrintPatch("mount", e.Create(old, nil)))
			fmt.Fprintln(out, domdbg.PrintPatch("re-render", e.Update(old, n, nil)))
			var b strings.Builder
			if err = html.Render(&b, elem); err != nil {
				return err
			}
			fmt.Fprintln(out, b.String())
			if dot != "" {
				return writeDot(dot, elem)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dot, "dot", "", "write a GraphViz diagram of the element to a file")
	return cmd
}

func writeDot(path string, elem *html.Node) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = domdbg.ToGraphViz(elem, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
