package process

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/mhcwrap/pkg/domain"
)

// DryRun prints commands instead of executing them.
type DryRun struct {
	Writer io.Writer
}

// NewDryRun creates a DryRun writing to w, or Stdout when w is nil.
func NewDryRun(w io.Writer) *DryRun {
	if w == nil {
		w = os.Stdout
	}
	return &DryRun{Writer: w}
}

// Execute writes the display form of cmd.
func (d *DryRun) Execute(_ context.Context, cmd domain.Command) error {
	if cmd.Path == "" {
		return domain.ErrEmptyCommand
	}
	_, err := fmt.Fprintln(d.Writer, cmd.String())
	return err
}
