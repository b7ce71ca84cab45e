package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devhub/internal/client/api"
)

// ListUsers fetches and renders the member directory.
func (a *App) ListUsers(ctx context.Context, p api.UserListParams) error {
	a.users.Fetch(ctx, p)

	if a.users.Loading() {
		fmt.Println("Loading users...")
		return nil
	}
	if msg := a.users.Err(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return nil
	}

	users := a.users.Users()
	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	for _, u := range users {
		fmt.Printf("%s  %s (@%s)  projects: %d\n", u.ID, u.FullName, u.Username, u.Projects)
	}
	fmt.Printf("Page %d of %d (%d total)\n",
		a.users.CurrentPage(), a.users.Pages(), a.users.Total())
	return nil
}

// ShowUser renders a member's public profile.
func (a *App) ShowUser(ctx context.Context, username string) error {
	u, err := a.client.UserByUsername(ctx, username)
	if err != nil {
		return err
	}

	fmt.Printf("%s (@%s)  id: %s\n", u.FullName, u.Username, u.ID)
	if u.Bio != "" {
		fmt.Println(u.Bio)
	}
	if len(u.Skills) > 0 {
		fmt.Printf("skills: %v\n", u.Skills)
	}
	fmt.Printf("followers: %d  following: %d  projects: %d  joined: %s\n",
		u.Followers, u.Following, u.Projects, u.JoinDate)
	return nil
}

// Follow toggles following a member and prints the resulting state.
func (a *App) Follow(ctx context.Context, userID string) error {
	following, err := a.client.ToggleFollow(ctx, userID)
	if err != nil {
		return err
	}

	if following {
		fmt.Println("Now following")
	} else {
		fmt.Println("Unfollowed")
	}
	return nil
}
