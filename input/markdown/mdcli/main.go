/*
Command mdcli renders markdown posts from the command line.

	mdcli [-trace Level] [-base DIR] [-toc] [-check [-root DIR]] [FILE]

With FILE given, the post is rendered to stdout (followed by its table of
contents if -toc is set). With -check, local images and videos referenced
by the post which are missing below -root are reported. Without FILE, mdcli starts an interactive session:
lines typed are collected into a document, and commands starting with ':'
render or manipulate it. Type ':help' for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mdpage/core"
	"github.com/npillmayer/mdpage/input/markdown"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'mdpage.cli'
func tracer() tracing.Trace {
	return tracing.Select("mdpage.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	baseDir := flag.String("base", "", "Base directory for relative images and videos")
	withTOC := flag.Bool("toc", false, "Print table of contents after the post")
	newTab := flag.Bool("newtab", true, "Open external links in a new tab")
	check := flag.Bool("check", false, "Report images and videos missing below -root")
	root := flag.String("root", ".", "Directory local asset paths are relative to")
	flag.Parse()

	// set up logging and rendering options
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.mdpage.cli":         *tlevel,
		"trace.mdpage.markdown":    *tlevel,
		"trace.mdpage.html":        *tlevel,
		"trace.mdpage.resources":   *tlevel,
		"trace.mdpage.frontmatter": *tlevel,
		"markdown.newtab":          fmt.Sprintf("%v", *newTab),
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)
	intp := &Intp{baseDir: *baseDir, root: *root, opts: markdown.OptionsFromConfig(conf)}
	//
	// render a file and exit
	if flag.NArg() > 0 {
		if err := intp.load(flag.Arg(0)); err != nil {
			core.UserError(err)
			os.Exit(2)
		}
		out := intp.render()
		fmt.Println(out.Post)
		if *withTOC && out.TOC != "" {
			fmt.Println(out.TOC)
		}
		if *check {
			missing := missingAssets(out.Post, intp.root)
			for _, err := range missing {
				core.UserError(err)
			}
			if len(missing) > 0 {
				os.Exit(4)
			}
		}
		return
	}
	//
	// set up REPL
	pterm.Info.Println("Welcome to the markdown CLI") // colored welcome message
	repl, err := readline.New("md > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
