/*
Command flatset prints word sets of text files, for debugging and inspection.

	flatset words FILE
	flatset union FILE FILE...
	flatset contains FILE WORD...

Files ending in .html or .htm are parsed as HTML and only their text is
considered.
*/
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/1KEEN1/FlatSet"
	"github.com/1KEEN1/FlatSet/html"
	"github.com/1KEEN1/FlatSet/textfile"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

// Globals are the flags shared by all commands.
type Globals struct {
	Trace string `help:"Trace level (Error, Info, Debug)." enum:"Error,Info,Debug" default:"Error"`
	Color string `help:"Colored output (auto, always, never)." enum:"auto,always,never" default:"auto"`

	ctx context.Context
	out io.Writer
}

type cli struct {
	Globals

	Words    wordsCmd    `cmd:"" help:"Print the set of words of a file."`
	Union    unionCmd    `cmd:"" help:"Print the union of the word sets of files."`
	Contains containsCmd `cmd:"" help:"Check words for membership in the word set of a file."`
}

type wordsCmd struct {
	File string `arg:"" type:"existingfile" help:"Text or HTML file."`
}

func (cmd *wordsCmd) Run(g *Globals) error {
	words, err := load(g.ctx, cmd.File)
	if err != nil {
		return err
	}
	return words.Dump(g.out)
}

type unionCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Text or HTML files."`
}

func (cmd *unionCmd) Run(g *Globals) error {
	union := flatset.New[string]()
	for _, name := range cmd.Files {
		words, err := load(g.ctx, name)
		if err != nil {
			return err
		}
		union.Merge(words)
	}
	return union.Dump(g.out)
}

type containsCmd struct {
	File  string   `arg:"" type:"existingfile" help:"Text or HTML file."`
	Words []string `arg:"" help:"Words to look up."`
}

func (cmd *containsCmd) Run(g *Globals) error {
	words, err := load(g.ctx, cmd.File)
	if err != nil {
		return err
	}
	found := color.New(color.FgGreen)
	missing := color.New(color.FgRed, color.Bold)
	for _, w := range cmd.Words {
		if words.Contains(w) {
			found.Fprintf(g.out, "+ %s\n", w)
		} else {
			missing.Fprintf(g.out, "- %s\n", w)
		}
	}
	return nil
}

// load reads the word set of a file, choosing the loader by file extension.
func load(ctx context.Context, name string) (*flatset.Set[string], error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return html.WordsFromHTML(f)
	default:
		return textfile.LoadContext(ctx, name)
	}
}

func traceLevel(level string) tracing.TraceLevel {
	switch level {
	case "Debug":
		return tracing.LevelDebug
	case "Info":
		return tracing.LevelInfo
	default:
		return tracing.LevelError
	}
}

// setupTracing routes all tracers of the module to the go-log adapter.
func setupTracing(level tracing.TraceLevel) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("flatset").SetTraceLevel(level)
}

func main() {
	var app cli
	kctx := kong.Parse(&app,
		kong.Name("flatset"),
		kong.Description("Inspect word sets of text files."),
		kong.UsageOnError(),
	)
	setupTracing(traceLevel(app.Trace))
	switch app.Color {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	default:
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	app.ctx, app.out = ctx, os.Stdout
	kctx.FatalIfErrorf(kctx.Run(&app.Globals))
}
