package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/restyle/config"
	"github.com/npillmayer/restyle/dom/reconcile"
	"github.com/npillmayer/restyle/dom/style/cssom"
	"github.com/npillmayer/restyle/dom/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

type globalOptions struct {
	sheet  string
	config string
}

// component is the owner of all nodes read from the command line.
type component struct {
	sheet *cssom.ClassSheet
}

func (c component) ClassSheet() *cssom.ClassSheet { return c.sheet }

func (opts *globalOptions) loadConfig() (*config.Config, error) {
	if opts.config == "" {
		return config.LoadOptional(".")
	}
	return config.Load(opts.config)
}

func (opts *globalOptions) loadSheet() (*cssom.ClassSheet, error) {
	if opts.sheet == "" {
		return cssom.NewClassSheet(), nil
	}
	f, err := os.Open(opts.sheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readSheet(f, filepath.Ext(opts.sheet))
}

// readSheet reads a class sheet from CSS source or from the <style>
// elements of an HTML document, depending on the file extension.
func readSheet(r io.Reader, ext string) (*cssom.ClassSheet, error) {
	switch strings.ToLower(ext) {
	case ".html", ".htm":
		doc, err := html.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HTML: %w", err)
		}
		return douceuradapter.ClassSheetFromHTML(doc), nil
	}
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return douceuradapter.ClassSheet(string(source))
}

// setup loads configuration and stylesheet and creates an engine, which
// reports diagnostics to w.
func (opts *globalOptions) setup(w io.Writer) (*reconcile.Engine, component, error) {
	cfg, err := opts.loadConfig()
	if err != nil {
		return nil, component{}, err
	}
	cfg.ApplyTraceLevel(traceKeys...)
	sheet, err := opts.loadSheet()
	if err != nil {
		return nil, component{}, err
	}
	reporter := reconcile.ReporterFunc(func(d reconcile.Diagnostic) {
		fmt.Fprintf(w, "warning: %s\n", d)
	})
	e := reconcile.New(reconcile.WithConfig(cfg), reconcile.WithReporter(reporter))
	return e, component{sheet}, nil
}
