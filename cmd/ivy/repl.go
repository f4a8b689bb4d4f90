package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/derekparker/trie"
	"github.com/npillmayer/ivy/engine/dom/style/css"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	out  io.Writer
}

// NewIntp creates an interpreter reading from the terminal, with completion
// of property names.
func NewIntp() (*Intp, error) {
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "css > ",
		AutoComplete: newPropertyCompleter(),
	})
	if err != nil {
		return nil, err
	}
	return &Intp{repl: repl, out: repl.Stdout()}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if quit := intp.Execute(line); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Execute interprets a single input line. It returns true if the user
// wants to quit.
func (intp *Intp) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	cmd, arg, _ := strings.Cut(line, " ")
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		help(intp.out)
	case ":css":
		gs := css.ParseStylesheet(arg)
		pterm.Fprintln(intp.out, pterm.Sprintf("%d rule(s)", gs.Len()))
		pterm.Fprint(intp.out, gs.String())
	case ":default":
		gs := css.DefaultStyle()
		if arg != "" {
			for _, decl := range gs.Lookup(arg) {
				pterm.Fprintln(intp.out, arg+" { "+decl.String()+" }")
			}
			break
		}
		pterm.Fprint(intp.out, gs.String())
	case ":themes":
		for k, v := range css.ThemeKeywords() {
			pterm.Fprintln(intp.out, k+" = "+v)
		}
	default:
		if strings.HasPrefix(cmd, ":") {
			pterm.Error.Println("unknown command " + cmd)
			break
		}
		decl := css.ParseInline(line)
		pterm.Fprintln(intp.out, pterm.Green(decl.String()))
	}
	return false
}

func help(w io.Writer) {
	pterm.Fprintln(w, `Enter inline style declarations, e.g. "color: red; margin: 1em 2px",
or one of the commands
  :css <stylesheet>   parse a stylesheet
  :default [selector] show the default stylesheet
  :themes             list theme color keywords
  :help               this help
  :quit               leave`)
}

// --- Completion ------------------------------------------------------------

// propertyCompleter completes the property name left of the cursor.
type propertyCompleter struct {
	names *trie.Trie
}

func newPropertyCompleter() *propertyCompleter {
	t := trie.New()
	for _, p := range css.KnownProperties() {
		t.Add(p, nil)
	}
	return &propertyCompleter{names: t}
}

// Do is part of interface readline.AutoCompleter.
func (pc *propertyCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && line[start-1] != ';' && line[start-1] != ' ' && line[start-1] != ':' {
		start--
	}
	prefix := string(line[start:pos])
	if prefix == "" || strings.HasPrefix(prefix, ":") {
		return nil, 0
	}
	var cands [][]rune
	for _, name := range pc.names.PrefixSearch(prefix) {
		cands = append(cands, []rune(name[len(prefix):]+": "))
	}
	return cands, len([]rune(prefix))
}
