package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	handleSessionEvents(ctx context.Context)

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error

	List(ctx context.Context) error
	Show(ctx context.Context, id string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Rename(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error

	Folders(ctx context.Context) error
	Tags(ctx context.Context) error
	FilterFolder(ctx context.Context, arg string) error
	FilterTag(ctx context.Context, arg string) error
	Search(ctx context.Context, term string) error
	ToggleTheme(ctx context.Context) error
	SetTheme(ctx context.Context, name string) error
	Reload(ctx context.Context) error
	Export(ctx context.Context, dir string) error
}

const (
	helpLoggedOut = "Available commands: login, signup, help, exit"
	helpLoggedIn  = `Available commands:
  list | l              list visible notes
  show [id]             show a note (default: selected)
  new                   create an untitled note
  edit [id]             edit title and content, saved when you finish
  rename <id> <title>   change a title
  delete <id>           delete a note
  folders | tags        list folders or tags
  folder <id|all>       filter by folder
  tag <id|all>          filter by tag
  search [term]         filter by text, no term clears
  theme [dark|light]    set the theme, no name toggles
  reload                fetch everything again
  export <dir>          write visible notes as Markdown
  logout | exit`
)

// runREPL starts a simple read–eval–print loop for the notes client.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Commands other than help, login, signup and exit need a session.
//
// Errors returned by command handlers are ignored here; handlers print and
// log their own errors. Session events raised by a command are handled right
// after it.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("notes%s> ", prefixSpace(statusFn())))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "login":
			_ = a.Login(ctx)
		case "signup":
			_ = a.Signup(ctx)
		default:
			if !a.isLoggedIn() {
				if isKnown(cmd) {
					printlnFn("Please login first.")
				} else {
					printlnFn("Unknown command:", cmd)
				}
				continue
			}
			dispatch(ctx, a, cmd, args)
		}

		a.handleSessionEvents(ctx)
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "logout":
		_ = a.Logout(ctx)
	case "l", "list":
		_ = a.List(ctx)
	case "show":
		_ = a.Show(ctx, arg(args, 0))
	case "new":
		_ = a.New(ctx)
	case "edit":
		_ = a.Edit(ctx, arg(args, 0))
	case "rename":
		if len(args) < 2 {
			printlnFn("Usage: rename <id> <title>")
			return
		}
		_ = a.Rename(ctx, args[0], strings.Join(args[1:], " "))
	case "delete":
		if len(args) == 0 {
			printlnFn("Usage: delete <id>")
			return
		}
		_ = a.Delete(ctx, args[0])
	case "folders":
		_ = a.Folders(ctx)
	case "tags":
		_ = a.Tags(ctx)
	case "folder":
		if len(args) == 0 {
			printlnFn("Usage: folder <id|all>")
			return
		}
		_ = a.FilterFolder(ctx, args[0])
	case "tag":
		if len(args) == 0 {
			printlnFn("Usage: tag <id|all>")
			return
		}
		_ = a.FilterTag(ctx, args[0])
	case "search":
		_ = a.Search(ctx, strings.Join(args, " "))
	case "theme":
		if len(args) > 0 {
			_ = a.SetTheme(ctx, args[0])
			return
		}
		_ = a.ToggleTheme(ctx)
	case "reload":
		_ = a.Reload(ctx)
	case "export":
		if len(args) == 0 {
			printlnFn("Usage: export <dir>")
			return
		}
		_ = a.Export(ctx, args[0])
	default:
		printlnFn("Unknown command:", cmd)
	}
}

var knownCommands = map[string]struct{}{
	"logout": {}, "l": {}, "list": {}, "show": {}, "new": {}, "edit": {},
	"rename": {}, "delete": {}, "folders": {}, "tags": {}, "folder": {},
	"tag": {}, "search": {}, "theme": {}, "reload": {}, "export": {},
}

func isKnown(cmd string) bool {
	_, ok := knownCommands[cmd]
	return ok
}

func arg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func prefixSpace(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}
