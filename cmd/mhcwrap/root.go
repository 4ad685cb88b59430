package main

import (
	"context"
	"fmt"

	"github.com/aretw0/mhcwrap"
	"github.com/aretw0/mhcwrap/internal/presentation/tui"
	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/aretw0/mhcwrap/pkg/runner"
	"github.com/spf13/cobra"
)

// Execute builds the command tree, runs it with args and returns the process exit status.
func Execute(a *app, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
		if isUsageError(err) {
			fmt.Fprintf(a.stderr, "Run '%s --help' for usage.\n", root.CommandPath())
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	var req domain.PredictRequest

	cmd := &cobra.Command{
		Use:   "mhcwrap",
		Short: "mhcwrap runs the mhcflurry tools inside an isolated conda environment",
		Long: `mhcwrap is an interactive wrapper around mhcflurry-predict-scan and mhcflurry-downloads.

Without arguments it shows a menu. With --sequence, --allele and --output all set
it runs mhcflurry-predict-scan directly.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			direct, err := directArguments(cmd)
			if err != nil {
				return err
			}

			s, err := a.newSession(readGlobals(cmd))
			if err != nil {
				return err
			}

			if direct {
				return s.run(cmd.Context(), func(ctx context.Context, r *runner.Runner) error {
					return r.RunPredict(ctx, req)
				})
			}

			if a.tty {
				tui.PrintBanner(a.stdout, mhcwrap.Version)
			}
			return s.run(cmd.Context(), func(ctx context.Context, r *runner.Runner) error {
				return r.Run(ctx)
			})
		},
	}

	cmd.SetIn(a.stdin)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	pf := cmd.PersistentFlags()
	pf.String("config", "mhcwrap.yaml", "Path to the YAML or JSON configuration file")
	pf.String("env-name", "", "Override the conda environment name")
	pf.Bool("debug", false, "Write debug logs to stderr")
	pf.Bool("dry-run", false, "Print the command instead of executing it")
	pf.String("metrics-file", "", "Write Prometheus metrics to this file after the run")

	addPredictFlags(cmd, &req)

	cmd.AddCommand(
		newPredictCmd(a),
		newDownloadsCmd(a),
		newEnvCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// addPredictFlags registers the three direct-run flags.
func addPredictFlags(cmd *cobra.Command, req *domain.PredictRequest) {
	cmd.Flags().StringVar(&req.Sequence, "sequence", "", "Sequence to input (uppercase letters A-Z)")
	cmd.Flags().StringVar(&req.Allele, "allele", "", "Allele to input (e.g. HLA-A*02:01)")
	cmd.Flags().StringVar(&req.Output, "output", "", "Output file location and name")
}

// directArguments reports whether all three predict flags were given.
// Giving only some of them is a usage error.
func directArguments(cmd *cobra.Command) (bool, error) {
	set := 0
	for _, name := range []string{"sequence", "allele", "output"} {
		if cmd.Flags().Changed(name) {
			set++
		}
	}
	switch set {
	case 0:
		return false, nil
	case 3:
		return true, nil
	}
	return false, usageError{err: domain.ErrPartialArguments}
}
