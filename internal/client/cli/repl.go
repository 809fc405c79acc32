package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Breeds(ctx context.Context) error
	Breed(ctx context.Context, id string) error
	Search(ctx context.Context, text string) error
	Images(ctx context.Context, id string, limit int) error
	Status(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, breeds, breed <id>, search <text>, images <id> [limit], status, exit"
	helpMember = "Available commands: profile, logout, breeds, breed <id>, search <text>, images <id> [limit], status, exit"
)

// runREPL reads one command per line from in and dispatches it to a. The
// account forms read from the same reader, so no input is buffered twice.
// The loop exits on EOF, on "exit" or "quit", or when ctx is done.
//
//	help                  list commands
//	register | login      open the account forms
//	logout                end the session
//	profile               show the signed-in account
//	breeds                list all breeds
//	breed <id>            breed details with images
//	search <text>         search breeds by name
//	images <id> [limit]   image URLs of a breed
//	status                probe the user service
//	exit | quit           leave the program
//
// Handler errors are not fatal. Handlers print their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("cats %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
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
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile", "whoami":
			_ = a.Profile(ctx)

		case "breeds":
			_ = a.Breeds(ctx)

		case "breed":
			if len(args) != 1 {
				printlnFn("Usage: breed <id>")
				continue
			}
			_ = a.Breed(ctx, args[0])

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "images":
			if len(args) < 1 || len(args) > 2 {
				printlnFn("Usage: images <id> [limit]")
				continue
			}
			limit := 0
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil || n <= 0 {
					printlnFn("Limit must be a positive number")
					continue
				}
				limit = n
			}
			_ = a.Images(ctx, args[0], limit)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
