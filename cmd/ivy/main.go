/*
Command ivy loads a web page and prints its layout tree.

Usage:

	ivy -url <url> [-dot file] [-system-fonts] [-cache dir] [-trace level]
	ivy -repl

With -repl, ivy reads inline style declarations from the terminal and prints
how they are understood. Lines starting with ':' are commands; enter :help
for a list.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/npillmayer/ivy/core"
	"github.com/npillmayer/ivy/core/font"
	"github.com/npillmayer/ivy/engine/frame/layout/layoutdbg"
	"github.com/npillmayer/ivy/engine/page"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'ivy.page'
func tracer() tracing.Trace {
	return tracing.Select("ivy.page")
}

var tracingKeys = []string{"ivy.core", "ivy.css", "ivy.fonts", "ivy.html", "ivy.layout",
	"ivy.page", "ivy.resources"}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	rawurl := flag.String("url", "", "URL or file path of page to load")
	dotfile := flag.String("dot", "", "Write layout tree as GraphViz DOT to file")
	sysfonts := flag.Bool("system-fonts", false, "Use fonts installed on the system")
	cachedir := flag.String("cache", "", "Folder for caching remote resources")
	timeout := flag.Duration("timeout", 30*time.Second, "Timeout for loading a page")
	repl := flag.Bool("repl", false, "Interactively parse inline styles")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range tracingKeys {
		conf["trace."+key] = *tlevel
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)

	if *repl {
		pterm.Info.Println("Welcome to the ivy style REPL") // colored welcome message
		intp, err := NewIntp()
		if err != nil {
			core.UserError(err)
			os.Exit(3)
		}
		pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
		intp.REPL()
		return
	}
	if *rawurl == "" {
		pterm.Error.Println("no page to load; use -url or -repl")
		flag.Usage()
		os.Exit(2)
	}
	fonts := font.NewManager()
	if *sysfonts {
		n := fonts.LoadSystemFonts()
		pterm.Info.Printfln("loaded %d system fonts", n)
	}
	p, err := page.New(*rawurl, fonts)
	if err != nil {
		core.UserError(err)
		os.Exit(4)
	}
	p.Puller.CacheDir = *cachedir
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	spinner, _ := pterm.DefaultSpinner.Start("loading " + p.URL.String())
	err = p.Load(ctx)
	if err != nil {
		spinner.Fail(err.Error())
		core.UserError(err)
		os.Exit(5)
	}
	spinner.Success(fmt.Sprintf("loaded in %v", p.Timers.Total))
	fmt.Println(p.Layout.String())
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"pull", "parse", "layout", "total", "nodes", "stylesheets"},
		{
			p.Timers.Pull.String(), p.Timers.Parse.String(),
			p.Timers.Layout.String(), p.Timers.Total.String(),
			fmt.Sprint(p.Layout.Len()), fmt.Sprint(len(p.Stylesheets)),
		},
	}).Render()
	if *dotfile != "" {
		if err := writeDot(p, *dotfile); err != nil {
			core.UserError(err)
			os.Exit(6)
		}
		pterm.Info.Printfln("layout tree written to %s", *dotfile)
	}
}

func writeDot(p *page.Page, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create file %s", fname)
	}
	defer f.Close()
	return layoutdbg.ToGraphViz(p.Layout, f)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
