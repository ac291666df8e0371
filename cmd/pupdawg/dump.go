package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	dawg "github.com/milden6/compactdawg"
)

func newDumpCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Print every record of the file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			d, err := dawg.Open(args[0])
			if err != nil {
				return err
			}
			defer func() {
				err = multierr.Append(err, d.Close())
			}()

			cfg.logger.Debug("dumping dawg", zap.String("file", args[0]), zap.Int("edges", d.NumEdges()))
			return d.Dump(cmd.OutOrStdout())
		},
	}
}
