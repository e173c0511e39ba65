package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/evalb/ptree"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse trees interactively",
		Long: `repl starts an interactive session. Every line entered is parsed as a tree
in bracket notation, printed in canonical form and displayed as a tree.
Quit with <ctrl>D.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			repl, err := readline.New("evalb> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			pterm.SetDefaultOutput(cmd.OutOrStdout())
			initDisplay()
			pterm.Info.Println("Welcome to the evalb REPL") // colored welcome message
			intp := &Intp{repl: repl, lenient: params.Lenient}
			intp.REPL()
			return nil
		},
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// lineReader is implemented by *readline.Instance.
type lineReader interface {
	Readline() (string, error)
}

// Intp is our interactive session object
type Intp struct {
	repl     lineReader
	lenient  bool
	lastTree *ptree.Tree
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Eval(line)
	}
	pterm.Info.Println("Good bye!")
}

// Eval parses a tree, given on a line by itself, and displays it.
func (intp *Intp) Eval(line string) {
	tree, err := intp.parse(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Info.Println(tree.String())
	pterm.DefaultTree.WithRoot(treeNodeFrom(tree)).Render()
	if intp.lastTree != nil {
		if tree.Equal(intp.lastTree) {
			pterm.Info.Println("equal to previous tree")
		} else {
			pterm.Info.Println("differs from previous tree")
		}
	}
	intp.lastTree = tree
}

func (intp *Intp) parse(line string) (*ptree.Tree, error) {
	if intp.lenient {
		return ptree.ParseLenient(line), nil
	}
	return ptree.Parse(line)
}

// treeNodeFrom converts a tree into pterm's tree representation.
func treeNodeFrom(tree *ptree.Tree) pterm.TreeNode {
	ll := leveledList(tree)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	return pterm.NewTreeFromLeveledList(ll)
}

func leveledList(tree *ptree.Tree) pterm.LeveledList {
	var ll pterm.LeveledList
	tree.Root().Walk(func(node *ptree.Node, depth int) bool {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  node.Label(),
		})
		return true
	})
	return ll
}
