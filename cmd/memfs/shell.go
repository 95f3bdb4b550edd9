package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	"github.com/weberc2/memfs/pkg/filesystem"
	"github.com/weberc2/memfs/pkg/logger"
	. "github.com/weberc2/memfs/pkg/types"
)

const helpText = `Commands:
  mkdir <name>             create a directory in the current directory
  create <name>            create an empty file in the current directory
  cd <name|path|..>        change the current directory
  write <target> <text>    replace a file's content with the rest of the line
  read <target>            print a file's content
  delete <target>          delete a file, or a directory and all it contains
  ls [target]              list a directory
  stat <target>            describe an entry
  pwd                      print the current directory's path
  df                       print block and entry usage
  check                    verify the file system's consistency
  help                     print this message
  exit                     leave the shell
A target is an entry index, a name in the current directory, or a path.
`

type Shell struct {
	FS     *filesystem.FileSystem
	Out    io.Writer
	Prompt bool
}

// Run executes each line of `in` until it is exhausted or an `exit`
// command is read.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), s.maxLine())
	if s.Prompt {
		fmt.Fprintln(s.Out, "File system initialized. Type 'help' for the list of commands.")
		s.prompt()
	}
	for scanner.Scan() {
		if quit := s.Exec(ctx, scanner.Text()); quit {
			return nil
		}
		if s.Prompt {
			s.prompt()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// lineSlack covers the command and target preceding `write` content.
const lineSlack = 4096

// maxLine is the longest line Run accepts: enough for a `write` that fills
// the whole store.
func (s *Shell) maxLine() int {
	stats := s.FS.Stats()
	if n := int(stats.BlockSize)*int(stats.Blocks) + lineSlack; n > bufio.MaxScanTokenSize {
		return n
	}
	return bufio.MaxScanTokenSize
}

func (s *Shell) prompt() {
	path, err := s.FS.CurrentPath()
	if err != nil {
		path = "?"
	}
	fmt.Fprintf(s.Out, "%s> ", path)
}

// Exec runs a single command line and reports whether the shell should
// stop.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	command, arg1, arg2 := SplitLine(line)
	if command == "" {
		return false
	}
	if err := s.exec(command, arg1, arg2); err != nil {
		if errors.Is(err, errExit) {
			return true
		}
		logger.Get(ctx).Debug(
			"command failed",
			"command", command,
			"err", err.Error(),
		)
		fmt.Fprintf(s.Out, "error: %s\n", describe(err))
	}
	return false
}

const errExit ConstError = "exit"

var errUsage = errors.New("usage")

// argCommands are the commands that require at least one argument.
var argCommands = map[string]bool{
	"mkdir":  true,
	"create": true,
	"cd":     true,
	"write":  true,
	"read":   true,
	"delete": true,
	"rm":     true,
	"stat":   true,
}

func (s *Shell) exec(command, arg1, arg2 string) error {
	switch command {
	case "exit", "quit":
		return errExit
	case "help":
		_, err := io.WriteString(s.Out, helpText)
		return err
	case "pwd":
		path, err := s.FS.CurrentPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.Out, path)
		return nil
	case "df":
		return renderStats(s.Out, s.FS.Stats())
	case "check":
		if err := s.FS.Check(); err != nil {
			return err
		}
		fmt.Fprintln(s.Out, "ok")
		return nil
	case "ls":
		return s.list(arg1)
	}

	if !argCommands[command] {
		return fmt.Errorf("unrecognized command `%s`; type 'help' for the list of commands", command)
	}
	if arg1 == "" {
		return fmt.Errorf("%s: %w", command, errUsage)
	}

	switch command {
	case "mkdir", "create":
		kind := KindFile
		if command == "mkdir" {
			kind = KindDir
		}
		i, err := s.FS.Create(arg1, kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "%s `%s` created at index %d\n", kind, arg1, i)
		return nil
	case "cd":
		return s.FS.ChangeDirectory(arg1)
	case "write":
		return s.FS.Write(filesystem.ParseTarget(arg1), []byte(arg2))
	case "read":
		content, err := s.FS.Read(filesystem.ParseTarget(arg1))
		if err != nil {
			return err
		}
		fmt.Fprintf(s.Out, "%s\n", content)
		return nil
	case "delete", "rm":
		return s.FS.Delete(filesystem.ParseTarget(arg1))
	case "stat":
		info, err := s.FS.Stat(filesystem.ParseTarget(arg1))
		if err != nil {
			return err
		}
		path, err := s.FS.Path(filesystem.IndexTarget(info.Index))
		if err != nil {
			return err
		}
		return renderStat(s.Out, path, &info, s.FS.TimeFunc())
	default:
		panic(fmt.Sprintf("unhandled command `%s`", command))
	}
}

func (s *Shell) list(arg string) error {
	dir := s.FS.CurrentDirectory()
	if arg != "" {
		info, err := s.FS.Stat(filesystem.ParseTarget(arg))
		if err != nil {
			return err
		}
		dir = info.Index
	}
	children, err := s.FS.ListChildren(dir)
	if err != nil {
		return err
	}
	if len(children) < 1 {
		fmt.Fprintln(s.Out, "(empty)")
		return nil
	}
	return renderList(s.Out, children)
}

// describe renders the innermost known error kind, falling back to the
// whole chain. Aggregated errors are rendered in full.
func describe(err error) string {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return strings.TrimSpace(merr.Error())
	}
	if errors.Is(err, errUsage) {
		command, _, _ := strings.Cut(err.Error(), ":")
		return fmt.Sprintf("%s: missing argument; type 'help' for usage", command)
	}
	var kind ConstError
	if errors.As(err, &kind) {
		return string(kind)
	}
	return err.Error()
}

// SplitLine splits a command line into the command, its first argument and
// the remainder of the line, which may contain spaces.
func SplitLine(line string) (command, arg1, arg2 string) {
	command, rest := cutField(line)
	arg1, rest = cutField(rest)
	arg2 = strings.TrimLeftFunc(rest, unicode.IsSpace)
	return
}

func cutField(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}
