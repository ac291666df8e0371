// Command pupdawg builds, queries and dumps compact DAWG word lists.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit statuses. A word that is not found is a valid answer, so it is kept
// apart from failures.
const (
	exitOK       = 0
	exitNotFound = 1
	exitFailure  = 2
)

type config struct {
	verbose bool
	jobs    int
	output  string
	minimum int
	maximum int

	logger *zap.Logger
}

type notFoundError struct {
	missing int
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%d word(s) not found", e.missing)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := &config{logger: zap.NewNop()}

	root := newRootCmd(cfg)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	_ = cfg.logger.Sync()

	var nf notFoundError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &nf):
		return exitNotFound
	}

	fmt.Fprintln(stderr, "pupdawg:", err)
	return exitFailure
}

func newRootCmd(cfg *config) *cobra.Command {
	root := &cobra.Command{
		Use:           "pupdawg",
		Short:         "Build and query compact directed acyclic word graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.setupLogger()
		},
	}
	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(newBuildCmd(cfg), newLookupCmd(cfg), newDumpCmd(cfg))
	return root
}

func (cfg *config) setupLogger() error {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	cfg.logger = logger
	return nil
}
