// internal/discover/discover.go
// Package discover resolves CLI input arguments into a flat, deterministic
// list of alignment-file paths.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrInputNotFound reports an input path that does not exist.
var ErrInputNotFound = errors.New("discover: input not found")

// ErrDirectoryNotFound reports an input directory that cannot be listed.
var ErrDirectoryNotFound = errors.New("discover: directory not found")

// extensions recognized when expanding a directory.
var extensions = map[string]bool{".bam": true, ".sam": true}

// Expand resolves files and directories to alignment-file paths. A
// directory contributes every .bam/.sam file directly inside it, sorted so
// sample order is reproducible; directories are not walked recursively.
// Explicit file arguments pass through regardless of extension.
func Expand(inputs []string) ([]string, error) {
	var files, dirs []string
	for _, in := range inputs {
		fi, err := os.Stat(in)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, in)
		}
		if fi.IsDir() {
			dirs = append(dirs, in)
		} else {
			files = append(files, in)
		}
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
		}
		var found []string
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if extensions[strings.ToLower(filepath.Ext(e.Name()))] {
				found = append(found, filepath.Join(dir, e.Name()))
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}
