package main

import (
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mdpage/core"
	"github.com/npillmayer/mdpage/input/frontmatter"
	"github.com/npillmayer/mdpage/input/markdown"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object. It collects lines of markdown into a
// document buffer.
type Intp struct {
	repl    *readline.Instance
	baseDir string
	root    string // local asset paths are relative to root
	opts    []markdown.Option
	buffer  []string
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(core.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op codes of interpreter commands.
const (
	APPEND int = iota
	QUIT
	HELP
	RENDER
	TOC
	CLEAR
	BASE
	LOAD
	CHECK
)

// Command is a parsed input line.
type Command struct {
	code int
	arg  string
}

var commands = map[string]int{
	"quit":   QUIT,
	"q":      QUIT,
	"help":   HELP,
	"render": RENDER,
	"r":      RENDER,
	"toc":    TOC,
	"clear":  CLEAR,
	"base":   BASE,
	"load":   LOAD,
	"check":  CHECK,
}

// parseCommand reads a ':' command. Any other line is appended to the
// document buffer verbatim.
func parseCommand(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "::") {
		return &Command{code: APPEND, arg: strings.Replace(line, "::", ":", 1)}, nil
	}
	if !strings.HasPrefix(trimmed, ":") {
		return &Command{code: APPEND, arg: line}, nil
	}
	name, arg, _ := strings.Cut(trimmed[1:], " ")
	code, ok := commands[strings.ToLower(name)]
	if !ok {
		return nil, core.Error(core.EINVALID, "unknown command :%s, try :help", name)
	}
	arg = strings.TrimSpace(arg)
	if (code == BASE || code == LOAD) && arg == "" {
		return nil, core.Error(core.EINVALID, "command :%s needs an argument", name)
	}
	tracer().Debugf("command %s(%q)", name, arg)
	return &Command{code: code, arg: arg}, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case APPEND:
		intp.buffer = append(intp.buffer, cmd.arg)
	case RENDER:
		pterm.Println(intp.render().Post)
	case TOC:
		if toc := intp.render().TOC; toc != "" {
			pterm.Println(toc)
		} else {
			pterm.Info.Println("no headings of level 2 or 3")
		}
	case CLEAR:
		intp.buffer = intp.buffer[:0]
	case BASE:
		intp.baseDir = cmd.arg
		pterm.Info.Printfln("base directory is %s", intp.baseDir)
	case LOAD:
		if err := intp.load(cmd.arg); err != nil {
			return false, err
		}
		pterm.Info.Printfln("loaded %d lines", len(intp.buffer))
	case CHECK:
		missing := missingAssets(intp.render().Post, intp.root)
		for _, err := range missing {
			pterm.Error.Println(core.UserMessage(err))
		}
		pterm.Info.Printfln("%d assets missing", len(missing))
	}
	return false, nil
}

// load replaces the document buffer by the contents of a file.
func (intp *Intp) load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read %s", filename)
	}
	text := string(data)
	meta, _, err := frontmatter.Split(text)
	if err != nil {
		tracer().Infof("front matter: %s", core.UserMessage(err))
	} else if title := meta.Title(); title != "" {
		tracer().Infof("loading post %q", title)
	}
	intp.buffer = strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	return nil
}

func (intp *Intp) render() markdown.Output {
	return markdown.Parse(strings.Join(intp.buffer, "\n"), intp.baseDir, intp.opts...)
}

func help() {
	pterm.Println(`Lines not starting with ':' are added to the document.
  :render        render the document
  :toc           render the table of contents
  :clear         empty the document
  :base DIR      set the base directory for images and videos
  :load FILE     replace the document by a file
  :check         report images and videos missing on disk
  :quit          leave (or <ctrl>D)
Start a line with '::' to add a line beginning with ':'.`)
}
