package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if !snap.IsAuthenticated {
		return ""
	}
	return fmt.Sprintf("(%s)", snap.User.Email)
}

// Root runs the interactive command loop until the user exits or stdin
// reaches EOF.
func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to the user directory CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("udir %s> ", a.getStatus())
		if !scanner.Scan() {
			break
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
				fmt.Println("Available commands: search, next, prev, page <n>, reset, whoami, profile, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, search, next, prev, page <n>, reset, exit")
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.whoami()
		case "search":
			_ = a.searchCmd(ctx)
		case "next":
			_ = a.nextPage(ctx)
		case "prev":
			_ = a.prevPage(ctx)
		case "page":
			if len(args) == 0 {
				fmt.Println("Usage: page <number>")
				continue
			}
			_ = a.gotoPage(ctx, args[0])
		case "reset":
			_ = a.resetSearch(ctx)
		case "profile":
			_ = a.editProfile(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
