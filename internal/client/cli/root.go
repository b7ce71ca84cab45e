package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/devhub/internal/client/api"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.session.User(); user != nil {
		s = "@" + user.Username + " "
	}
	if mode := a.Mode(); mode != "" {
		s = s + string(mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", strings.TrimSpace(s))
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to DevHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("devhub %s> ", a.getStatus())
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

		var err error

		switch cmd {
		case "help":
			if a.session.IsAuthenticated() {
				fmt.Println("Available commands: whoami, edit, users [search], user <name>, follow <id>,")
				fmt.Println("  projects [search], tag <tag>, refresh, project <id>, star <id>, newproject,")
				fmt.Println("  chats, open <id>, newchat <userId>, msg <text>, health, logout, exit")
			} else {
				fmt.Println("Available commands: register, login, projects [search], project <id>, health, exit")
			}

		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "edit":
			err = a.EditProfile(ctx)

		case "users":
			p := api.UserListParams{}
			if len(args) > 0 {
				p.Search = strings.Join(args, " ")
			}
			err = a.ListUsers(ctx, p)
		case "user":
			if len(args) == 0 {
				fmt.Println("Usage: user <username>")
				continue
			}
			err = a.ShowUser(ctx, args[0])
		case "follow":
			if len(args) == 0 {
				fmt.Println("Usage: follow <userId>")
				continue
			}
			err = a.Follow(ctx, args[0])

		case "projects":
			p := api.ProjectListParams{}
			if len(args) > 0 {
				p.Search = strings.Join(args, " ")
			}
			err = a.ListProjects(ctx, p)
		case "tag":
			if len(args) == 0 {
				fmt.Println("Usage: tag <tag>")
				continue
			}
			err = a.ListProjects(ctx, api.ProjectListParams{Tag: args[0]})
		case "refresh":
			err = a.RefreshProjects(ctx)
		case "project":
			if len(args) == 0 {
				fmt.Println("Usage: project <id>")
				continue
			}
			err = a.ShowProject(ctx, args[0])
		case "star":
			if len(args) == 0 {
				fmt.Println("Usage: star <id>")
				continue
			}
			err = a.StarProject(ctx, args[0])
		case "newproject":
			err = a.NewProject(ctx)

		case "chats":
			err = a.ListChats(ctx)
		case "open":
			if len(args) == 0 {
				fmt.Println("Usage: open <conversationId>")
				continue
			}
			err = a.OpenChat(ctx, args[0])
		case "newchat":
			if len(args) == 0 {
				fmt.Println("Usage: newchat <userId>")
				continue
			}
			err = a.NewChat(ctx, args[0])
		case "msg":
			if len(args) == 0 {
				fmt.Println("Usage: msg <text>")
				continue
			}
			err = a.SendMessage(ctx, strings.Join(args, " "))

		case "health":
			err = a.HealthCheck(ctx)

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}

		if err != nil {
			fmt.Printf("Error: %s\n", err.Error())
		}
	}

}

// HealthCheck probes the backend once and prints the result.
func (a *App) HealthCheck(ctx context.Context) error {
	status, err := a.client.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Backend %s at %s\n", status.Status, status.Timestamp)
	return nil
}
