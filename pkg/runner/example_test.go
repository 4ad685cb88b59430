package runner_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/mhcwrap/internal/config"
	"github.com/aretw0/mhcwrap/pkg/adapters/process"
	"github.com/aretw0/mhcwrap/pkg/command"
	"github.com/aretw0/mhcwrap/pkg/domain"
	"github.com/aretw0/mhcwrap/pkg/runner"
)

func ExampleRunner_RunPredict() {
	r := runner.NewRunner(
		command.NewBuilder(config.Default().Environment),
		process.NewDryRun(os.Stdout),
		runner.WithHandler(runner.NewTextHandler(strings.NewReader(""), os.Stdout)),
	)

	err := r.RunPredict(context.Background(), domain.PredictRequest{
		Sequence: "MFVFLVLLPLVSSQCVNLTTRTQLPPAYTNSFTRGVYYPDKVFRSSVLHS",
		Allele:   "HLA-A*02:01",
		Output:   "./out.csv",
	})
	if err != nil {
		fmt.Println(err)
	}
	// Output:
	// conda run --no-capture-output -n mhcflurry_env mhcflurry-predict-scan --sequences MFVFLVLLPLVSSQCVNLTTRTQLPPAYTNSFTRGVYYPDKVFRSSVLHS --allele 'HLA-A*02:01' --out ./out.csv
}

func ExampleRunner_Run() {
	r := runner.NewRunner(
		command.NewBuilder(config.Default().Environment),
		process.NewDryRun(os.Stdout),
		runner.WithHandler(runner.NewTextHandler(strings.NewReader("7\n4\n"), os.Stdout)),
	)

	if err := r.Run(context.Background()); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Tools available are:
	// 0. mhcflurry-predict-scan
	// 1. mhcflurry-downloads info
	// 2. mhcflurry-downloads fetch
	// 3. set up environment
	// 4. teardown environment
	// Select tool to use:Select tool to use:
	// Removing run environment...
	// conda remove --name mhcflurry_env --all --yes
}
