package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields and attempts to create a new
// account. On success the session is authenticated and the token persisted.
// The password bytes are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Full name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	skills, err := GetCommaList(a.reader, "Skills (comma-separated, optional)", os.Stdout)
	if err != nil {
		return err
	}

	req := api.RegisterRequest{
		FullName: fullName,
		Username: username,
		Email:    email,
		Password: string(password),
		Skills:   skills,
	}

	user, err := a.session.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", user.FullName)
	return nil
}

// Login prompts for credentials and authenticates. A failed login leaves
// the session untouched; the error is shown by the caller. The password
// bytes are wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.session.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	fmt.Printf("Signed in as %s\n", user.Username)
	return nil
}

// Logout drops the session and the persisted token. Safe to call when
// already anonymous.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Println("Signed out")
	return nil
}

// WhoAmI prints the current user's profile, or a hint when anonymous.
func (a *App) WhoAmI(_ context.Context) error {
	user := a.session.User()
	if user == nil {
		fmt.Println("Not signed in (use 'login' or 'register')")
		return nil
	}

	fmt.Printf("%s (@%s)\n", user.FullName, user.Username)
	fmt.Printf("  email:     %s\n", user.Email)
	if user.Bio != "" {
		fmt.Printf("  bio:       %s\n", user.Bio)
	}
	if len(user.Skills) > 0 {
		fmt.Printf("  skills:    %v\n", user.Skills)
	}
	fmt.Printf("  followers: %d  following: %d  projects: %d\n",
		user.Followers, user.Following, user.Projects)
	return nil
}

// EditProfile updates bio and skills of the signed-in user.
func (a *App) EditProfile(ctx context.Context) error {
	bio, err := GetMultiline(a.reader, "Bio", os.Stdout)
	if err != nil {
		return err
	}
	skills, err := GetCommaList(a.reader, "Skills (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}

	upd := api.UserUpdate{}
	if bio != "" {
		upd.Bio = &bio
	}
	if skills != nil {
		upd.Skills = &skills
	}

	user, err := a.session.UpdateUser(ctx, upd)
	if err != nil {
		return err
	}

	fmt.Printf("Profile updated for @%s\n", user.Username)
	return nil
}
