package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	dawg "github.com/milden6/compactdawg"
)

func newLookupCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup FILE WORD...",
		Short: "Check whether words are in the dictionary",
		Long: `Prints "word? 1" for every word found and "word? 0" otherwise.
Exits with status 1 if any word is missing and 2 on errors.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.OutOrStdout(), cfg, args[0], args[1:])
		},
	}

	cmd.Flags().IntVarP(&cfg.jobs, "jobs", "j", runtime.NumCPU(), "concurrent lookups")

	return cmd
}

func runLookup(out io.Writer, cfg *config, filename string, words []string) (err error) {
	d, err := dawg.Open(filename)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, d.Close())
	}()

	cfg.logger.Debug("opened dawg",
		zap.String("file", filename),
		zap.Int("width", d.RecordWidth()),
		zap.Int("edges", d.NumEdges()),
		zap.Int("words", d.NumAdded()),
		zap.Int("nodes", d.NumNodes()))

	results := make([]dawg.Result, len(words))

	var g errgroup.Group
	if cfg.jobs > 0 {
		g.SetLimit(cfg.jobs)
	}
	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			result, err := d.Lookup(word)
			if err != nil {
				return fmt.Errorf("lookup %q: %w", word, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	found := color.New(color.FgGreen)
	missing := color.New(color.FgRed)

	var nf notFoundError
	for i, word := range words {
		if results[i] == dawg.Found {
			_, err = found.Fprintf(out, "%s? %d\n", word, 1)
		} else {
			nf.missing++
			_, err = missing.Fprintf(out, "%s? %d\n", word, 0)
		}
		if err != nil {
			return err
		}
	}

	if nf.missing > 0 {
		return nf
	}
	return nil
}
