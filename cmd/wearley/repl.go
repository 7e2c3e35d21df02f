package main

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/wareya/wearley/ast"
	"github.com/wareya/wearley/bnf"
	"github.com/wareya/wearley/earley"
	"github.com/wareya/wearley/packrat"
	"github.com/wareya/wearley/tokenize"
)

// repl holds the state of one interactive session: the currently loaded
// grammar, its tokenizer, and both parser backends, rebuilt whenever the
// grammar or start rule changes.
type repl struct {
	grammar   *bnf.Grammar
	startRule string
	mode      string // "earley" or "packrat"

	tok     *tokenize.Tokenizer
	earleyP *earley.Parser
	rattP   *packrat.Parser
}

func newREPL(grammarPath, startRule string) (*repl, error) {
	r := &repl{mode: "earley", startRule: startRule}
	if grammarPath != "" {
		if err := r.loadGrammar(grammarPath); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *repl) loadGrammar(path string) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading grammar file: %w", err)
	}
	g, err := bnf.Compile(string(src))
	if err != nil {
		return err
	}
	r.grammar = g
	if r.startRule == "" && g.NumRules() > 0 {
		r.startRule = g.Rule(0).Name
	}
	return r.rebuild()
}

func (r *repl) rebuild() error {
	if r.grammar == nil {
		return nil
	}
	tok, err := tokenize.New(r.grammar)
	if err != nil {
		return err
	}
	ep, err := earley.New(r.grammar, r.startRule)
	if err != nil {
		return err
	}
	pp, err := packrat.New(r.grammar, r.startRule)
	if err != nil {
		return err
	}
	r.tok, r.earleyP, r.rattP = tok, ep, pp
	return nil
}

func (r *repl) run(initialInput string) {
	rl, err := readline.New("wearley> ")
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	defer rl.Close()

	if initialInput != "" {
		r.handle(initialInput)
	}

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			return
		}
		r.handle(line)
	}
}

func (r *repl) handle(line string) {
	switch {
	case strings.HasPrefix(line, ":grammar "):
		path := strings.TrimSpace(strings.TrimPrefix(line, ":grammar "))
		if err := r.loadGrammar(path); err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		pterm.Success.Printfln("loaded grammar from %s (start rule %s)", path, r.startRule)

	case strings.HasPrefix(line, ":start "):
		r.startRule = strings.TrimSpace(strings.TrimPrefix(line, ":start "))
		if err := r.rebuild(); err != nil {
			pterm.Error.Println(err.Error())
			return
		}
		pterm.Success.Printfln("start rule set to %s", r.startRule)

	case strings.HasPrefix(line, ":mode "):
		mode := strings.TrimSpace(strings.TrimPrefix(line, ":mode "))
		if mode != "earley" && mode != "packrat" {
			pterm.Error.Println("mode must be 'earley' or 'packrat'")
			return
		}
		r.mode = mode
		pterm.Success.Printfln("parser mode set to %s", r.mode)

	case line == ":help":
		pterm.Info.Println(
			"commands: :grammar <path>  :start <rule>  :mode earley|packrat  :quit\n" +
				"anything else is parsed as input against the current grammar")

	default:
		r.parseAndPrint(line)
	}
}

func (r *repl) parseAndPrint(line string) {
	if r.grammar == nil {
		pterm.Error.Println("no grammar loaded; use :grammar <path>")
		return
	}
	tokens, err := r.tok.Tokenize(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}

	var tree *ast.Node
	switch r.mode {
	case "packrat":
		tree, err = r.rattP.Parse(tokens)
	default:
		tree, err = r.earleyP.Parse(tokens)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Success.Println("accepted")
	printTree(tree, 0)
}

func printTree(n *ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsLeaf() {
		fmt.Printf("%s%q\n", indent, n.Token.Text)
		return
	}
	fmt.Printf("%s%s\n", indent, n.Rule)
	for _, c := range n.Children {
		printTree(c, depth+1)
	}
}
