/*
Package runner implements the interactive flow of the wrapper.

It walks a single pass through the menu state machine:

	ShowMenu -> AwaitSelection -> [CollectInputs] -> BuildCommand -> Execute -> Done

AwaitSelection loops on invalid input and CollectInputs is only entered for
predict-scan. There is no loop back to the menu; one run executes at most one
command.

# Key Components

  - Runner: Owns the state machine and hands built commands to an Executor.
  - TextHandler: Prompt based terminal I/O.
  - Menu: Reads a numeric operation selection.
  - Collector: Reads and validates sequence, allele and output path.

# Usage

	r := runner.NewRunner(
		command.NewBuilder(cfg.Environment),
		process.NewRunner(process.WithAllowed(cfg.Environment.Conda)),
		runner.WithHandler(runner.NewTextHandler(os.Stdin, os.Stdout)),
		runner.WithLogger(logger),
	)

	if err := r.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package runner
