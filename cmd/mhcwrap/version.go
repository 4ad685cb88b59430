package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/mhcwrap"
	"github.com/spf13/cobra"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of mhcwrap",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "mhcwrap version %s\n", strings.TrimSpace(mhcwrap.Version))
		},
	}
}
