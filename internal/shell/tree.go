package shell

import (
	"path/filepath"
	"strings"

	"github.com/jakoblorz/fsx/internal/filesystem"
)

// Both traversals run on explicit work stacks instead of call-stack
// recursion. Directory classification comes from ReadDir entries, which
// do not follow symbolic links: a symlink is removed or reported as a
// leaf and never descended into.

// removeTree deletes path and everything under it, children before parent.
// Failures on individual entries are skipped so siblings still get
// removed; the caller observes the final state via the filesystem.
func removeTree(fsys filesystem.FileSystem, root string) {
	info, err := fsys.Lstat(root)
	if err != nil {
		return
	}
	if !info.IsDir() {
		_ = fsys.Remove(root)
		return
	}

	type frame struct {
		path     string
		expanded bool
	}

	stack := []frame{{path: root}}
	for len(stack) > 0 {
		i := len(stack) - 1
		if stack[i].expanded {
			// Children already handled; the directory is empty now
			// unless some of them could not be removed.
			_ = fsys.Remove(stack[i].path)
			stack = stack[:i]
			continue
		}

		stack[i].expanded = true
		dir := stack[i].path

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			child := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				stack = append(stack, frame{path: child})
			} else {
				_ = fsys.Remove(child)
			}
		}
	}
}

// searchTree reports every entry under root whose name contains pattern,
// pre-order: an entry is matched first, then descended into if it is a
// directory, whether or not it matched. Returns false when the root
// itself cannot be enumerated.
func searchTree(fsys filesystem.FileSystem, root, pattern string, report func(path string)) bool {
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := fsys.ReadDir(dir)
		if err != nil {
			if dir == root {
				return false
			}
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if strings.Contains(entry.Name(), pattern) {
				report(path)
			}
			if entry.IsDir() {
				stack = append(stack, path)
			}
		}
	}

	return true
}
