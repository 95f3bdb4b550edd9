package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/weberc2/memfs/pkg/filesystem"
	. "github.com/weberc2/memfs/pkg/types"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newShell(t *testing.T, params filesystem.Params) (*Shell, *strings.Builder) {
	t.Helper()
	now := epoch
	params.TimeFunc = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	params.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	fs, err := filesystem.New(&params)
	if err != nil {
		t.Fatalf("filesystem.New(): unexpected err: %v", err)
	}
	var out strings.Builder
	return &Shell{FS: fs, Out: &out}, &out
}

func TestShell_Run(t *testing.T) {
	for _, tc := range []struct {
		name   string
		params filesystem.Params
		script string
		wanted string
	}{{
		name: "session",
		script: `mkdir docs
cd docs
create notes
write notes hello   world
read notes
pwd
cd ..
delete docs
ls
exit
read never`,
		wanted: "Dir `docs` created at index 1\n" +
			"File `notes` created at index 2\n" +
			"hello   world\n" +
			"/docs\n" +
			"(empty)\n",
	}, {
		name: "errors",
		script: `bogus
read 99
delete /
cd nowhere
write
create notes
cd notes
read notes`,
		wanted: "error: unrecognized command `bogus`; type 'help' for the list of commands\n" +
			"error: not found\n" +
			"error: cannot delete the root directory\n" +
			"error: not found\n" +
			"error: write: missing argument; type 'help' for usage\n" +
			"File `notes` created at index 1\n" +
			"error: not a directory\n" +
			"error: empty file\n",
	}, {
		name:   "out of space",
		params: filesystem.Params{BlockSize: 4, Blocks: 2},
		script: "create a\nwrite a 0123456789\nread a\n",
		wanted: "File `a` created at index 1\n" +
			"error: insufficient contiguous free blocks\n" +
			"error: empty file\n",
	}, {
		name:   "table full",
		params: filesystem.Params{Entries: 2},
		script: "mkdir a\nmkdir b\n",
		wanted: "Dir `a` created at index 1\n" +
			"error: entry table full\n",
	}, {
		name:   "check",
		script: "mkdir a\ncheck\n",
		wanted: "Dir `a` created at index 1\nok\n",
	}} {
		t.Run(tc.name, func(t *testing.T) {
			shell, out := newShell(t, tc.params)
			err := shell.Run(context.Background(), strings.NewReader(tc.script))
			if err != nil {
				t.Fatalf("Run(): unexpected err: %v", err)
			}
			if found := out.String(); found != tc.wanted {
				t.Fatalf("wanted:\n%s\nfound:\n%s", tc.wanted, found)
			}
		})
	}
}

func TestShell_List(t *testing.T) {
	shell, out := newShell(t, filesystem.Params{BlockSize: 8})
	for _, line := range []string{
		"mkdir docs",
		"create a.txt",
		"write a.txt 0123456789",
	} {
		shell.Exec(context.Background(), line)
	}
	out.Reset()

	shell.Exec(context.Background(), "ls")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("wanted 3 lines; found %d:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "INDEX") {
		t.Fatalf("wanted header; found `%s`", lines[0])
	}
	if !strings.HasSuffix(lines[1], "docs/") {
		t.Fatalf("wanted `docs/` row; found `%s`", lines[1])
	}
	for _, want := range []string{"File", "10 B", "[0, 2)", "a.txt"} {
		if !strings.Contains(lines[2], want) {
			t.Fatalf("wanted `%s` in `%s`", want, lines[2])
		}
	}
}

func TestShell_Stat(t *testing.T) {
	shell, out := newShell(t, filesystem.Params{})
	shell.Exec(context.Background(), "mkdir docs")
	shell.Exec(context.Background(), "cd docs")
	shell.Exec(context.Background(), "create a.txt")
	out.Reset()

	shell.Exec(context.Background(), "stat a.txt")
	for _, want := range []string{
		"/docs/a.txt",
		"index:    2",
		"kind:     File",
		"parent:   1",
		"(0 bytes)",
		"ago",
	} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("wanted `%s` in:\n%s", want, out.String())
		}
	}
}

func TestShell_Exit(t *testing.T) {
	shell, _ := newShell(t, filesystem.Params{})
	if !shell.Exec(context.Background(), "exit") {
		t.Fatal("Exec(exit): wanted true")
	}
	if shell.Exec(context.Background(), "   ") {
		t.Fatal("Exec(blank): wanted false")
	}
}

func TestSplitLine(t *testing.T) {
	for _, tc := range []struct {
		input               string
		command, arg1, arg2 string
	}{
		{"", "", "", ""},
		{"pwd", "pwd", "", ""},
		{"  cd   docs  ", "cd", "docs", ""},
		{"write a.txt hello world", "write", "a.txt", "hello world"},
		{"write 3 \t two  spaces ", "write", "3", "two  spaces "},
	} {
		command, arg1, arg2 := SplitLine(tc.input)
		if command != tc.command || arg1 != tc.arg1 || arg2 != tc.arg2 {
			t.Fatalf(
				"SplitLine(%q): wanted (%q, %q, %q); found (%q, %q, %q)",
				tc.input,
				tc.command,
				tc.arg1,
				tc.arg2,
				command,
				arg1,
				arg2,
			)
		}
	}
}

func TestShell_UnknownCommand(t *testing.T) {
	for _, line := range []string{"bogus", "bogus arg", "bogus arg rest of line"} {
		shell, out := newShell(t, filesystem.Params{})
		shell.Exec(context.Background(), line)
		wanted := "error: unrecognized command `bogus`; type 'help' for the list of commands\n"
		if found := out.String(); found != wanted {
			t.Fatalf("Exec(%q): wanted `%s`; found `%s`", line, wanted, found)
		}
	}
}

func TestShell_Run_LongLine(t *testing.T) {
	shell, out := newShell(t, filesystem.Params{})
	content := strings.Repeat("x", 70000)
	script := "create big\nwrite big " + content + "\nread big\n"
	if err := shell.Run(context.Background(), strings.NewReader(script)); err != nil {
		t.Fatalf("Run(): unexpected err: %v", err)
	}
	wanted := "File `big` created at index 1\n" + content + "\n"
	if found := out.String(); found != wanted {
		t.Fatalf("wanted %d bytes of output; found %d", len(wanted), len(found))
	}
	if used := shell.FS.Stats().Used; used != 69 {
		t.Fatalf("Stats().Used: wanted `69`; found `%d`", used)
	}
}

func TestDescribe(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  error
		wanted []string
	}{{
		name:   "kind",
		input:  fmt.Errorf("reading `3`: %w", EmptyFileErr),
		wanted: []string{"empty file"},
	}, {
		name:   "usage",
		input:  fmt.Errorf("read: %w", errUsage),
		wanted: []string{"read: missing argument"},
	}, {
		name: "aggregated",
		input: multierror.Append(
			nil,
			fmt.Errorf("entry `1`: %w", CycleDetectedErr),
			fmt.Errorf("entry `2`: %w", NotADirErr),
		),
		wanted: []string{
			"2 errors occurred",
			"entry `1`: cycle detected in directory tree",
			"entry `2`: not a directory",
		},
	}} {
		t.Run(tc.name, func(t *testing.T) {
			found := describe(tc.input)
			for _, want := range tc.wanted {
				if !strings.Contains(found, want) {
					t.Fatalf("describe(): wanted `%s` in `%s`", want, found)
				}
			}
		})
	}
}
