package main

import (
	"context"

	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/aretw0/mhcwrap/pkg/runner"
	"github.com/spf13/cobra"
)

func newPredictCmd(a *app) *cobra.Command {
	var req domain.PredictRequest

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Run mhcflurry-predict-scan",
		Long: `Runs mhcflurry-predict-scan. The sequence, allele and output path are taken
from the flags when all three are set, otherwise they are asked for interactively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			direct, err := directArguments(cmd)
			if err != nil {
				return err
			}
			s, err := a.newSession(readGlobals(cmd))
			if err != nil {
				return err
			}
			return s.run(cmd.Context(), func(ctx context.Context, r *runner.Runner) error {
				if direct {
					return r.RunPredict(ctx, req)
				}
				return r.RunOperation(ctx, domain.OpPredictScan)
			})
		},
	}
	addPredictFlags(cmd, &req)
	return cmd
}
