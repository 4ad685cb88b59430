package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/mhcwrap/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	closed bool
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Print writes a plain line.
func (h *TextHandler) Print(format string, args ...any) {
	fmt.Fprintf(h.Writer, format+"\n", args...)
}

// Render writes markdown content through the renderer when one is configured.
func (h *TextHandler) Render(content string) {
	output := content
	if h.Renderer != nil {
		if rendered, err := h.Renderer(content); err == nil {
			output = rendered
		}
	}
	fmt.Fprintln(h.Writer, strings.TrimSpace(output))
}

// Prompt writes label and reads one line. Only the line terminator is removed:
// surrounding whitespace is part of the answer and left to the validators.
// An exhausted stream yields domain.ErrInputClosed.
func (h *TextHandler) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if h.closed {
		return "", domain.ErrInputClosed
	}

	fmt.Fprint(h.Writer, label)

	text, err := h.Reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		h.closed = true
		if text == "" {
			fmt.Fprintln(h.Writer)
			return "", domain.ErrInputClosed
		}
	}
	return strings.TrimRight(text, "\r\n"), nil
}
