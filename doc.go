/*
Package mhcwrap is an interactive command-line wrapper for the mhcflurry
prediction tools.

It presents a menu of operations, gathers and validates the sequence and allele
to score, builds the external command and runs it inside an isolated conda
environment. The prediction itself is done entirely by mhcflurry; mhcwrap never
reads its output.

# Layout

  - pkg/domain: Operations, requests and commands.
  - pkg/validate: Sequence, allele and output path checks.
  - pkg/command: Renders operations into conda argument lists.
  - pkg/runner: Menu, prompts and the single-pass flow.
  - pkg/adapters/process: Executes commands without a shell.
  - cmd/mhcwrap: The cobra command line.

# Usage

	mhcwrap                                   # interactive menu
	mhcwrap --sequence MFVFLVLLPL --allele 'HLA-A*02:01' --output ./out.csv
	mhcwrap downloads fetch
	mhcwrap env setup --dry-run
*/
package mhcwrap
