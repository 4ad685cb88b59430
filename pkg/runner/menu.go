package runner

import (
	"context"
	"strconv"
	"strings"

	"github.com/aretw0/mhcwrap/pkg/domain"
)

const (
	menuHeader = "Tools available are:"
	menuPrompt = "Select tool to use:"
)

// Menu presents the operations and reads a selection.
type Menu struct {
	handler    *TextHandler
	operations []domain.Operation
}

// NewMenu creates a menu over every known operation.
func NewMenu(h *TextHandler) *Menu {
	return &Menu{handler: h, operations: domain.Operations()}
}

// Show lists the operations with their selection index.
func (m *Menu) Show() {
	m.handler.Render(menuHeader)
	for i, op := range m.operations {
		m.handler.Print("%d. %s", i, op)
	}
}

// Select prompts until a number in [0, len(operations)) is entered.
// Anything else is silently asked again.
func (m *Menu) Select(ctx context.Context) (domain.Operation, error) {
	for {
		line, err := m.handler.Prompt(ctx, menuPrompt)
		if err != nil {
			return 0, err
		}
		if op, ok := m.parse(line); ok {
			return op, nil
		}
	}
}

func (m *Menu) parse(line string) (domain.Operation, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	op, err := domain.ParseOperation(n)
	if err != nil {
		return 0, false
	}
	return op, true
}
