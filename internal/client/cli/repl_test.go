package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls  []string
	events int
}

func (f *fakeExec) rec(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return nil
}

func (f *fakeExec) isLoggedIn() bool                        { return f.loggedIn }
func (f *fakeExec) handleSessionEvents(ctx context.Context) { f.events++ }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.rec("login")
}
func (f *fakeExec) Signup(ctx context.Context) error { return f.rec("signup") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.rec("logout")
}
func (f *fakeExec) List(ctx context.Context) error              { return f.rec("list") }
func (f *fakeExec) Show(ctx context.Context, id string) error   { return f.rec("show %s", id) }
func (f *fakeExec) New(ctx context.Context) error               { return f.rec("new") }
func (f *fakeExec) Edit(ctx context.Context, id string) error   { return f.rec("edit %s", id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error { return f.rec("delete %s", id) }
func (f *fakeExec) Rename(ctx context.Context, id, title string) error {
	return f.rec("rename %s %s", id, title)
}
func (f *fakeExec) Folders(ctx context.Context) error { return f.rec("folders") }
func (f *fakeExec) Tags(ctx context.Context) error    { return f.rec("tags") }
func (f *fakeExec) FilterFolder(ctx context.Context, arg string) error {
	return f.rec("folder %s", arg)
}
func (f *fakeExec) FilterTag(ctx context.Context, arg string) error { return f.rec("tag %s", arg) }
func (f *fakeExec) Search(ctx context.Context, term string) error   { return f.rec("search %s", term) }
func (f *fakeExec) ToggleTheme(ctx context.Context) error           { return f.rec("theme") }
func (f *fakeExec) SetTheme(ctx context.Context, name string) error { return f.rec("theme %s", name) }
func (f *fakeExec) Reload(ctx context.Context) error                { return f.rec("reload") }
func (f *fakeExec) Export(ctx context.Context, dir string) error    { return f.rec("export %s", dir) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, fmt.Sprintln(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &out
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"help",
		"list",
		"login",
		"help",
		"list",
		"show 12",
		"new",
		"edit",
		"rename 12 Shopping list",
		"delete 12",
		"folders",
		"tags",
		"folder all",
		"tag 3",
		"search Alpha beta",
		"search",
		"theme",
		"theme light",
		"reload",
		"export /tmp/out",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login",
		"list",
		"show 12",
		"new",
		"edit ",
		"rename 12 Shopping list",
		"delete 12",
		"folders",
		"tags",
		"folder all",
		"tag 3",
		"search Alpha beta",
		"search ",
		"theme",
		"theme light",
		"reload",
		"export /tmp/out",
		"logout",
	}, exec.calls)
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("new\nfoobar\nquit\n")))

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "Please login first.")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	out := captureOutput(t)

	input := "rename 1\ndelete\nfolder\ntag\nexport\nquit\n"
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "(bob)" }, bufio.NewReader(strings.NewReader(input)))

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "")
	assert.Contains(t, joined, "Usage: rename <id> <title>")
	assert.Contains(t, joined, "Usage: delete <id>")
	assert.Contains(t, joined, "notes (bob)> ")
}

func TestRunREPL_HandlesSessionEventsAfterCommands(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\nlist\n")))

	// help and exit are not counted; login and list are
	assert.Equal(t, 2, exec.events)
}

func TestRunREPL_EOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("")))
	assert.Empty(t, exec.calls)
}
