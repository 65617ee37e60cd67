package internal

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// BinarySuffix is appended to assembled image file names.
const BinarySuffix = ".ch8"

// OutputName derives the image file name for a source file: the suffix
// after the last '.' of the base name is replaced by BinarySuffix, or
// BinarySuffix is appended when there is none. Dots in the directory part
// are never taken as the suffix, so "dir.v1/prog" becomes "dir.v1/prog.ch8".
func OutputName(source string) string {
	dir, base := filepath.Split(source)
	if dot := strings.LastIndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	return dir + base + BinarySuffix
}

// IsTerminal returns true if file is attached to a terminal.
func IsTerminal(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
