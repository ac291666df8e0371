package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	dawg "github.com/milden6/compactdawg"
	"github.com/milden6/compactdawg/internal/wordlist"
)

func newBuildCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build WORDLIST",
		Short: "Generate a directed acyclic word graph in a compact form",
		Long: `Reads whitespace separated words from WORDLIST (or - for standard
input), lowercases them, drops anything that is not a-z and writes the
graph to the output file (.pup recommended extension).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.OutOrStdout(), cmd.InOrStdin(), cfg, args[0])
		},
	}

	cmd.Flags().StringVarP(&cfg.output, "output", "o", "", "output file")
	cmd.Flags().IntVarP(&cfg.minimum, "minimum", "m", wordlist.DefaultMin, "minimum length of a word")
	cmd.Flags().IntVarP(&cfg.maximum, "maximum", "M", wordlist.DefaultMax, "maximum length of a word")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runBuild(out io.Writer, stdin io.Reader, cfg *config, source string) (err error) {
	in := stdin
	if source != "-" {
		f, openErr := os.Open(source)
		if openErr != nil {
			return openErr
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		in = f
	}

	words, err := wordlist.Read(in, wordlist.Filter{Min: cfg.minimum, Max: cfg.maximum})
	if err != nil {
		return fmt.Errorf("reading %s: %w", source, err)
	}
	cfg.logger.Debug("read word list", zap.String("source", source), zap.Int("words", len(words)))

	builder := dawg.NewBuilder(dawg.WithLogger(cfg.logger))
	for _, word := range words {
		if err := builder.Add(word); err != nil {
			return err
		}
	}

	size, err := builder.Save(cfg.output)
	if err != nil {
		return fmt.Errorf("writing %s: %w", cfg.output, err)
	}

	d, err := builder.Finish()
	if err != nil {
		return err
	}
	defer d.Close()

	_, err = fmt.Fprintf(out, "Read %d words into %d nodes and %d edges\n%s is %d bytes (%d byte records)\n",
		d.NumAdded(), d.NumNodes(), d.NumEdges(), cfg.output, size, d.RecordWidth())
	return err
}
