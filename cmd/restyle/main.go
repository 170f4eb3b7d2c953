/*
Command restyle runs the style engine on render nodes described in YAML
files. It is a tool for inspecting how static and bound styles resolve
against a stylesheet, and which patches the engine emits.

	restyle render --sheet app.css node.yaml
	restyle diff --sheet page.html old.yaml new.yaml

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

// traceKeys are the tracers of the engine's packages.
var traceKeys = []string{
	"restyle.style", "restyle.css", "restyle.cssom", "restyle.dom", "restyle.engine",
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "restyle",
		Short: "Resolve and reconcile element styles",
		Long: `restyle resolves the styles of render nodes against a class stylesheet.

Render nodes are described in YAML files. The stylesheet is either a CSS
file or an HTML document with <style> elements. Only single-class rules
(".name { … }") are considered.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	opts := &globalOptions{}
	rootCmd.PersistentFlags().StringVar(&opts.sheet, "sheet", "", "stylesheet (.css, or .html with <style> elements)")
	rootCmd.PersistentFlags().StringVar(&opts.config, "config", "", "configuration file (default ./restyle.yaml, if present)")
	rootCmd.AddCommand(
		renderCmd(opts),
		diffCmd(opts),
		versionCmd(),
	)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "restyle: %s\n", err)
		os.Exit(1)
	}
}
