package main

import (
	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/spf13/cobra"
)

func newDownloadsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "downloads",
		Short: "Manage mhcflurry model data",
	}
	cmd.AddCommand(
		operationCmd(a, "info", "Show the status of the downloaded model data", domain.OpDownloadsInfo),
		newFetchCmd(a),
	)
	return cmd
}

func newEnvCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Create or remove the conda environment",
	}
	cmd.AddCommand(
		operationCmd(a, "setup", "Create the environment from its definition file", domain.OpSetupEnv),
		operationCmd(a, "teardown", "Remove the environment and all its packages", domain.OpTeardownEnv),
	)
	return cmd
}

// operationCmd builds a leaf command that runs op without any prompts.
func operationCmd(a *app, use, short string, op domain.Operation) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(readGlobals(cmd))
			if err != nil {
				return err
			}
			return s.finish(s.runner.RunOperation(cmd.Context(), op))
		},
	}
}

func newFetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [bundle...]",
		Short: "Fetch model data",
		Long: `Fetches mhcflurry model data. Without bundle names the configured bundles are
fetched, and when none are configured mhcflurry-downloads picks its defaults
(models_class1_presentation, data_curated, models_class1).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := readGlobals(cmd)
			opts.FetchBundles = args
			s, err := a.newSession(opts)
			if err != nil {
				return err
			}
			return s.finish(s.runner.RunOperation(cmd.Context(), domain.OpDownloadsFetch))
		},
	}
}
