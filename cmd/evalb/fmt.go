package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/evalb/corpus"
	"github.com/npillmayer/evalb/ptree"
	"github.com/spf13/cobra"
)

var errMalformedLines = errors.New("input contains malformed trees")

func newFmtCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt [FILE]",
		Short: "Print trees in canonical bracket notation",
		Long: `fmt reads trees in bracket notation, one per line, and prints each of
them in canonical form. Input is read from FILE or from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			in, name := cmd.InOrStdin(), "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in, name = f, args[0]
			}
			return canonicalize(in, name, cmd.OutOrStdout(), cmd.ErrOrStderr(), params.Lenient)
		},
	}
}

// canonicalize writes every line of in in canonical form. Malformed lines
// are reported to errOut and written unchanged.
func canonicalize(in io.Reader, name string, out, errOut io.Writer, lenient bool) error {
	scanner := corpus.LineScanner(in)
	w := bufio.NewWriter(out)
	lineno, bad := 0, 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if lenient {
			fmt.Fprintln(w, ptree.ParseLenient(line))
			continue
		}
		tree, err := ptree.Parse(line)
		if err != nil {
			bad++
			fmt.Fprintf(errOut, "%s:%d: %v\n", name, lineno, err)
			fmt.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, tree)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read %s: %w", name, err)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if bad > 0 {
		return fmt.Errorf("%w: %d of %d lines", errMalformedLines, bad, lineno)
	}
	return nil
}
