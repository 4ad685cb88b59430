/*
Package domain contains the core models shared by the mhcwrap packages.

It is kept free of I/O: nothing in here reads from the terminal or starts a
process. The entities only live for a single run of the program.

# Key Entities

  - Operation: The closed set of things the wrapper can do (predict-scan, downloads
    info, downloads fetch, environment setup, environment teardown).
  - PredictRequest: The sequence, allele and output path for a predict-scan run.
  - Command: A fully formed external invocation as a discrete argument list.
  - LifecycleHooks: Callbacks fired around command execution for observability.
*/
package domain
