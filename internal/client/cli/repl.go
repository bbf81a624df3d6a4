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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Fields(ctx context.Context) error
	Edit(ctx context.Context, fieldID string) error
	Show(ctx context.Context, fieldID string) error
	Refresh(ctx context.Context, fieldID string) error
	Sync(ctx context.Context) error
	Avatars(ctx context.Context) error
	AddAvatar(ctx context.Context) error
	DeleteAvatar(ctx context.Context, id string) error
	Upload(ctx context.Context, path string) error
	Download(ctx context.Context, key string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the brandsync CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - register         — create an account
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - fields | f       — list brand fields with sync badges
//	  - edit <field>     — edit a field's value
//	  - show <field>     — show a field's value and status
//	  - refresh [field]  — re-fetch from the server (all fields if omitted)
//	  - sync             — push queued edits and pull remote changes
//	  - avatars          — list customer avatars
//	  - addavatar        — add a customer avatar
//	  - delavatar <id>   — remove a customer avatar
//	  - upload <path>    — upload a brand document
//	  - download <key>   — download a brand document
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bs> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (f)ields, edit, show, refresh, sync, avatars, addavatar, delavatar, upload, download, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "f", "fields":
			_ = a.Fields(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <field>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <field>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "refresh":
			fieldID := ""
			if len(args) > 0 {
				fieldID = args[0]
			}
			_ = a.Refresh(ctx, fieldID)

		case "sync":
			_ = a.Sync(ctx)

		case "avatars":
			_ = a.Avatars(ctx)

		case "addavatar":
			_ = a.AddAvatar(ctx)

		case "delavatar":
			if len(args) == 0 {
				printlnFn("Usage: delavatar <id>")
				continue
			}
			_ = a.DeleteAvatar(ctx, args[0])

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			_ = a.Upload(ctx, args[0])

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <key>")
				continue
			}
			_ = a.Download(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
