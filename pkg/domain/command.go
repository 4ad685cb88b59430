package domain

import "strings"

// Command is a single external invocation expressed as an argument list.
// It is never passed through a shell.
type Command struct {
	Operation Operation
	Path      string
	Args      []string
}

// Argv returns the executable followed by its arguments.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Path)
	return append(argv, c.Args...)
}

// String renders the command the way a user would type it, quoting tokens
// that a POSIX shell would otherwise interpret.
func (c Command) String() string {
	argv := c.Argv()
	parts := make([]string, len(argv))
	for i, tok := range argv {
		parts[i] = shellQuote(tok)
	}
	return strings.Join(parts, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	for _, r := range s {
		if !isShellSafe(r) {
			return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
		}
	}
	return s
}

func isShellSafe(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./:=@%+,", r)
}
