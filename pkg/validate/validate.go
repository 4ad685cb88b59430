// Package validate holds the input checks applied before a command is built.
package validate

import (
	"os"
	"path/filepath"
)

// Sequence reports whether s is a non-empty run of uppercase ASCII letters.
func Sequence(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) {
			return false
		}
	}
	return true
}

// Allele reports whether a is non-empty and made only of uppercase ASCII
// letters, digits, ':', '*' and '-'.
func Allele(a string) bool {
	if a == "" {
		return false
	}
	for i := 0; i < len(a); i++ {
		c := a[i]
		if isUpper(c) || isDigit(c) {
			continue
		}
		switch c {
		case ':', '*', '-':
			continue
		}
		return false
	}
	return true
}

// OutputPath returns path when its parent directory exists, otherwise fallback.
// The boolean reports whether the fallback was substituted.
//
// The parent is filepath.Dir(path), so a bare file name such as "out.csv" has
// parent "." and is kept as given, written to the working directory. Only an
// empty path or a missing/non-directory parent yields the fallback.
func OutputPath(path, fallback string) (string, bool) {
	if path == "" {
		return fallback, true
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		return fallback, true
	}
	return path, false
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
