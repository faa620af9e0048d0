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
	afterCommand(ctx context.Context)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Stories(ctx context.Context) error
	Story(ctx context.Context, args []string) error
	NewStory(ctx context.Context) error
	Authors(ctx context.Context) error
	Author(ctx context.Context, args []string) error

	CheckIns(ctx context.Context) error
	CheckIn(ctx context.Context, args []string) error
	NewCheckIn(ctx context.Context) error

	Edit(ctx context.Context) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context) error

	Resources(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Safety Tracker CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. After every command the navigation it queued,
// if any, is followed. Unknown commands are reported back to the user. The
// loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             show available commands
//	  - register         create an account
//	  - login            authenticate
//	  - exit | quit      leave the program
//
//	Logged in:
//	  - stories          list stories
//	  - story <id>       open a story
//	  - newstory         write a story
//	  - authors          list authors
//	  - author <id>      open an author
//	  - checkins         list check-ins
//	  - checkin <id>     open a check-in
//	  - newcheckin       record a check-in
//	  - edit | save | cancel | delete act on the open story or check-in
//	  - resources        emergency resources
//	  - logout           log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("st %s> ", statusFn()))
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
				printlnFn("Available commands: stories, story <id>, newstory, authors, author <id>, " +
					"checkins, checkin <id>, newcheckin, edit, save, cancel, delete, resources, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "stories", "s":
			_ = a.Stories(ctx)
		case "story":
			_ = a.Story(ctx, args)
		case "newstory":
			_ = a.NewStory(ctx)
		case "authors":
			_ = a.Authors(ctx)
		case "author":
			_ = a.Author(ctx, args)

		case "checkins", "c":
			_ = a.CheckIns(ctx)
		case "checkin":
			_ = a.CheckIn(ctx, args)
		case "newcheckin":
			_ = a.NewCheckIn(ctx)

		case "edit":
			_ = a.Edit(ctx)
		case "save":
			_ = a.Save(ctx)
		case "cancel":
			_ = a.Cancel(ctx)
		case "delete":
			_ = a.Delete(ctx)

		case "resources":
			_ = a.Resources(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		a.afterCommand(ctx)
	}
}
