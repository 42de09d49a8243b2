package shell

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jakoblorz/fsx/internal/config"
	"github.com/jakoblorz/fsx/internal/filesystem"
	"github.com/jakoblorz/fsx/internal/history"
	"github.com/jakoblorz/fsx/internal/tui"
)

// command is one entry in the fixed dispatch table.
type command struct {
	name    string
	minArgs int
	usage   string
	summary string
	run     func(sh *Shell, args []string)
}

// commands lists every dispatchable command in help display order.
// exit and quit terminate the loop and are handled by Dispatch itself.
var commands = []command{
	{name: "ls", minArgs: 0, usage: "ls [path]", summary: "List files and folders", run: (*Shell).list},
	{name: "cd", minArgs: 1, usage: "cd <dir>", summary: "Change directory", run: (*Shell).changeDir},
	{name: "pwd", minArgs: 0, usage: "pwd", summary: "Print current directory", run: (*Shell).printWorkingDir},
	{name: "cp", minArgs: 2, usage: "cp <src> <dest>", summary: "Copy file", run: (*Shell).copy},
	{name: "mv", minArgs: 2, usage: "mv <src> <dest>", summary: "Move or rename file", run: (*Shell).move},
	{name: "rm", minArgs: 1, usage: "rm <path>", summary: "Delete file/folder recursively", run: (*Shell).remove},
	{name: "touch", minArgs: 1, usage: "touch <file>", summary: "Create empty file", run: (*Shell).touch},
	{name: "mkdir", minArgs: 1, usage: "mkdir <dir>", summary: "Create new folder", run: (*Shell).makeDir},
	{name: "search", minArgs: 1, usage: "search <pattern>", summary: "Search file by name", run: (*Shell).search},
	{name: "history", minArgs: 0, usage: "history", summary: "Show activity log", run: (*Shell).showHistory},
}

var commandIndex = make(map[string]*command)

func init() {
	// showHelp ranges over the table, so its entry joins after the var
	// is initialized.
	commands = append(commands, command{name: "help", minArgs: 0, usage: "help", summary: "Show help menu", run: (*Shell).showHelp})
	for i := range commands {
		commandIndex[commands[i].name] = &commands[i]
	}
}

// Shell is the interactive command dispatcher. It owns the working
// directory: relative arguments are resolved against sh.wd and os.Chdir is
// never called, so a shell can run against any FileSystem implementation.
type Shell struct {
	fs  filesystem.FileSystem
	log *history.Log
	cfg *config.Config
	out io.Writer
	err io.Writer
	wd  string
}

// New creates a Shell with its working directory initialized from the
// filesystem.
func New(fs filesystem.FileSystem, log *history.Log, cfg *config.Config, out, errOut io.Writer) *Shell {
	wd, err := fs.Getwd()
	if err != nil {
		wd = "/"
	}

	return &Shell{
		fs:  fs,
		log: log,
		cfg: cfg,
		out: out,
		err: errOut,
		wd:  filepath.Clean(wd),
	}
}

// WorkingDir returns the shell's current working directory.
func (sh *Shell) WorkingDir() string {
	return sh.wd
}

// Run reads and dispatches one command line at a time until exit, quit or
// end of input. Each command runs to completion before the next read.
func (sh *Shell) Run(in io.Reader) error {
	fmt.Fprintln(sh.out, tui.TitleStyle.Render("fsx file explorer"))
	fmt.Fprintln(sh.out, tui.SubtleStyle.Render("Type 'help' to see available commands."))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(sh.out, "%s $ ", tui.PromptStyle.Render(sh.wd))
		if !scanner.Scan() {
			break
		}
		if sh.Dispatch(scanner.Text()) {
			break
		}
	}

	fmt.Fprintln(sh.out, "Goodbye!")
	return scanner.Err()
}

// Dispatch parses and executes a single command line. It returns true when
// the line asks the shell to terminate.
func (sh *Shell) Dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	name, args := fields[0], fields[1:]
	if name == "exit" || name == "quit" {
		return true
	}

	cmd, ok := commandIndex[name]
	if !ok {
		fmt.Fprintln(sh.err, tui.ErrorStyle.Render("Unknown command. Type 'help' for the list."))
		return false
	}
	if len(args) < cmd.minArgs {
		fmt.Fprintf(sh.err, "usage: %s\n", cmd.usage)
		return false
	}

	cmd.run(sh, args)
	return false
}

// resolve turns a command argument into an absolute path.
func (sh *Shell) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(sh.wd, path)
}

// printError reports an operation failure without aborting the loop.
func (sh *Shell) printError(prefix string, err error) {
	fmt.Fprintln(sh.err, tui.ErrorStyle.Render(fmt.Sprintf("%s: %v", prefix, err)))
}
