package shell

import (
	"fmt"
	"io"
	"time"

	"github.com/jakoblorz/fsx/internal/tui"
)

// list prints the entries of a directory with a type marker and byte size.
func (sh *Shell) list(args []string) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	target := sh.resolve(path)

	entries, err := sh.fs.ReadDir(target)
	if err != nil {
		sh.printError("ls", err)
		sh.log.Record(fmt.Sprintf("Failed to list %s: %v", target, err))
		return
	}

	fmt.Fprintf(sh.out, "Contents of %s:\n", target)
	for _, entry := range entries {
		if entry.IsDir() {
			fmt.Fprintf(sh.out, "%s  %s\n", tui.DirStyle.Render("[DIR]"), entry.Name())
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Entry vanished between enumeration and stat; skip it
			// rather than report a fabricated size.
			continue
		}
		fmt.Fprintf(sh.out, "       %s (%d bytes)\n", entry.Name(), info.Size())
	}

	sh.log.Record(fmt.Sprintf("Listed contents of: %s", target))
}

// changeDir updates the shell-owned working directory. On any failure the
// working directory is left untouched.
func (sh *Shell) changeDir(args []string) {
	target := sh.resolve(args[0])

	info, err := sh.fs.Stat(target)
	if err != nil {
		sh.printError("cd", err)
		sh.log.Record(fmt.Sprintf("Failed to change directory to %s: %v", target, err))
		return
	}
	if !info.IsDir() {
		sh.printError("cd", fmt.Errorf("%s: not a directory", target))
		sh.log.Record(fmt.Sprintf("Failed to change directory to %s: not a directory", target))
		return
	}

	sh.wd = target
	fmt.Fprintf(sh.out, "Changed directory to: %s\n", target)
	sh.log.Record(fmt.Sprintf("Changed directory to: %s", target))
}

func (sh *Shell) printWorkingDir(args []string) {
	fmt.Fprintln(sh.out, sh.wd)
	sh.log.Record("Checked current directory.")
}

// copy streams src to dest in fixed-size chunks so large files are never
// held in memory whole.
func (sh *Shell) copy(args []string) {
	src, dest := sh.resolve(args[0]), sh.resolve(args[1])

	if err := sh.copyFile(src, dest); err != nil {
		sh.printError("cp", err)
		sh.log.Record(fmt.Sprintf("Failed to copy %s -> %s: %v", src, dest, err))
		return
	}

	fmt.Fprintf(sh.out, "Copied: %s -> %s\n", src, dest)
	sh.log.Record(fmt.Sprintf("Copied file: %s -> %s", src, dest))
}

func (sh *Shell) copyFile(src, dest string) error {
	info, err := sh.fs.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", src)
	}

	in, err := sh.fs.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := sh.fs.Create(dest)
	if err != nil {
		return err
	}

	chunkSize := sh.cfg.Copy.ChunkSize
	if chunkSize <= 0 {
		chunkSize = 4096
	}

	if _, err := io.CopyBuffer(out, in, make([]byte, chunkSize)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// move is a single rename: moving across filesystems fails the same way
// the OS primitive fails, with no copy+delete fallback.
func (sh *Shell) move(args []string) {
	src, dest := sh.resolve(args[0]), sh.resolve(args[1])

	if err := sh.fs.Rename(src, dest); err != nil {
		sh.printError("mv", err)
		sh.log.Record(fmt.Sprintf("Failed to move %s -> %s: %v", src, dest, err))
		return
	}

	fmt.Fprintf(sh.out, "Moved: %s -> %s\n", src, dest)
	sh.log.Record(fmt.Sprintf("Moved/Renamed: %s -> %s", src, dest))
}

// remove deletes a file or a whole directory tree, best-effort. A single
// log record covers the invocation, not each removed entry.
func (sh *Shell) remove(args []string) {
	target := sh.resolve(args[0])

	removeTree(sh.fs, target)

	fmt.Fprintf(sh.out, "Removed: %s\n", target)
	sh.log.Record(fmt.Sprintf("Removed: %s", target))
}

func (sh *Shell) touch(args []string) {
	target := sh.resolve(args[0])

	if sh.fs.Exists(target) {
		now := time.Now()
		if err := sh.fs.Chtimes(target, now, now); err != nil {
			sh.printError("touch", err)
			sh.log.Record(fmt.Sprintf("Failed to touch %s: %v", target, err))
			return
		}
	} else {
		w, err := sh.fs.Create(target)
		if err != nil {
			sh.printError("touch", err)
			sh.log.Record(fmt.Sprintf("Failed to touch %s: %v", target, err))
			return
		}
		w.Close()
	}

	fmt.Fprintf(sh.out, "File created/updated: %s\n", target)
	sh.log.Record(fmt.Sprintf("Created or updated file: %s", target))
}

func (sh *Shell) makeDir(args []string) {
	target := sh.resolve(args[0])

	if err := sh.fs.Mkdir(target, 0755); err != nil {
		sh.printError("mkdir", err)
		sh.log.Record(fmt.Sprintf("Failed to create directory %s: %v", target, err))
		return
	}

	fmt.Fprintf(sh.out, "Directory created: %s\n", target)
	sh.log.Record(fmt.Sprintf("Created directory: %s", target))
}

// search walks the tree under the working directory and prints every entry
// whose name contains the pattern as a substring. A working directory that
// cannot be enumerated yields no output and no record.
func (sh *Shell) search(args []string) {
	pattern := args[0]

	ok := searchTree(sh.fs, sh.wd, pattern, func(path string) {
		fmt.Fprintln(sh.out, path)
	})
	if !ok {
		return
	}

	sh.log.Record(fmt.Sprintf("Searched for: %s in %s", pattern, sh.wd))
}

func (sh *Shell) showHistory(args []string) {
	lines, ok := sh.log.ReadAll()
	if !ok {
		fmt.Fprintln(sh.out, "No activity history found yet.")
		return
	}

	fmt.Fprintln(sh.out, tui.SubtleStyle.Render("----------- ACTIVITY LOG -----------"))
	for _, line := range lines {
		fmt.Fprintln(sh.out, line)
	}
	fmt.Fprintln(sh.out, tui.SubtleStyle.Render("------------------------------------"))
}

func (sh *Shell) showHelp(args []string) {
	fmt.Fprintln(sh.out, tui.TitleStyle.Render("Available Commands:"))
	for _, cmd := range commands {
		fmt.Fprintf(sh.out, "  %-17s %s\n", cmd.usage, tui.HelpStyle.Render("- "+cmd.summary))
	}
	fmt.Fprintf(sh.out, "  %-17s %s\n", "exit / quit", tui.HelpStyle.Render("- Exit the shell"))
}
