package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/npillmayer/evalb/config"
	"github.com/npillmayer/evalb/corpus"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Exit codes
const (
	exitOK       = 0
	exitMismatch = 1 // gold and test files differ in length
	exitFailure  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line given by args and returns an exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "evalb: %v\n", err)
	if errors.Is(err, corpus.ErrLineCount) {
		return exitMismatch
	}
	return exitFailure
}

// options collects command line flags.
type options struct {
	params    string
	debug     bool
	maxErrors int
	workers   int
	lenient   bool
	trace     string
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "evalb [flags] GOLD TEST",
		Short: "Compare gold trees with test trees, line by line",
		Long: `evalb reads a gold file and a test file with one tree in bracket notation
per line and compares the trees of corresponding lines.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initTracing(opts.trace)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return compare(cmd.Context(), cmd.OutOrStdout(), params, args[0], args[1])
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opts.debug, "debug", "d", false, "print a report line for every sentence")
	flags.IntVarP(&opts.maxErrors, "errors", "e", 10, "give up after this many malformed lines")
	flags.IntVarP(&opts.workers, "workers", "j", 1, "number of line pairs evaluated in parallel")
	pflags := cmd.PersistentFlags()
	pflags.StringVarP(&opts.params, "params", "p", "", "parameter file (TOML)")
	pflags.BoolVar(&opts.lenient, "lenient", false, "build best-effort trees for malformed lines")
	pflags.StringVar(&opts.trace, "trace", "", "trace level [Debug|Info|Error]")
	cmd.AddCommand(newFmtCommand(opts), newReplCommand(opts))
	return cmd
}

// resolve loads the parameter file, if any, and lets flags given on the
// command line override its values.
func (opts *options) resolve(cmd *cobra.Command) (*config.Params, error) {
	params := config.Default()
	if opts.params != "" {
		var err error
		if params, err = config.Load(opts.params); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("debug") {
		params.Debug = opts.debug
	}
	if flags.Changed("errors") {
		params.MaxErrors = opts.maxErrors
	}
	if flags.Changed("workers") {
		params.Workers = opts.workers
	}
	if flags.Changed("lenient") {
		params.Lenient = opts.lenient
	}
	if opts.trace != "" {
		params.TraceLevel = opts.trace
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	setTraceLevel(params.Level())
	return params, nil
}

func initTracing(level string) error {
	gtrace.SyntaxTracer = gologadapter.New()
	if level == "" {
		level = config.Default().TraceLevel
	}
	setTraceLevel(tracing.TraceLevelFromString(level))
	return nil
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range tracerKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
