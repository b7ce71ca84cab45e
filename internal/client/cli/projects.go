package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/devhub/internal/client/api"
)

// ListProjects fetches and renders the project feed with the given filters.
func (a *App) ListProjects(ctx context.Context, p api.ProjectListParams) error {
	a.projects.Fetch(ctx, p)
	a.renderProjects()
	return nil
}

// RefreshProjects re-issues the last project query unchanged.
func (a *App) RefreshProjects(ctx context.Context) error {
	a.projects.Refetch(ctx)
	a.renderProjects()
	return nil
}

func (a *App) renderProjects() {
	if a.projects.Loading() {
		fmt.Println("Loading projects...")
		return
	}
	if msg := a.projects.Err(); msg != "" {
		fmt.Printf("Error: %s\n", msg)
		return
	}

	projects := a.projects.Projects()
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		return
	}

	for _, p := range projects {
		fmt.Printf("%s  %s by @%s  [stars: %d, views: %d]\n",
			p.ID, p.Title, p.Author.Username, p.Stars, p.Views)
		if len(p.Tags) > 0 {
			fmt.Printf("    tags: %v\n", p.Tags)
		}
	}
	fmt.Printf("Page %d of %d (%d total)\n",
		a.projects.CurrentPage(), a.projects.Pages(), a.projects.Total())
}

// ShowProject fetches and renders a single project.
func (a *App) ShowProject(ctx context.Context, projectID string) error {
	p, err := a.client.Project(ctx, projectID)
	if err != nil {
		return err
	}

	fmt.Printf("%s by @%s\n", p.Title, p.Author.Username)
	fmt.Println(p.Description)
	if len(p.Tags) > 0 {
		fmt.Printf("tags: %v\n", p.Tags)
	}
	if p.DemoURL != "" {
		fmt.Printf("demo: %s\n", p.DemoURL)
	}
	if p.GithubURL != "" {
		fmt.Printf("github: %s\n", p.GithubURL)
	}
	fmt.Printf("stars: %d  views: %d  created: %s\n", p.Stars, p.Views, p.CreatedAt)
	return nil
}

// StarProject toggles the star on a project and prints the server's answer.
func (a *App) StarProject(ctx context.Context, projectID string) error {
	state, err := a.client.ToggleStar(ctx, projectID)
	if err != nil {
		return err
	}

	if state.Starred {
		fmt.Printf("Starred (%d stars)\n", state.Stars)
	} else {
		fmt.Printf("Unstarred (%d stars)\n", state.Stars)
	}
	return nil
}

// NewProject prompts for the project fields and publishes it.
func (a *App) NewProject(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	tags, err := GetCommaList(a.reader, "Tags (comma-separated)", os.Stdout)
	if err != nil {
		return err
	}
	demoURL, err := getSimpleText(a.reader, "Demo URL (optional)", os.Stdout)
	if err != nil {
		return err
	}
	githubURL, err := getSimpleText(a.reader, "GitHub URL (optional)", os.Stdout)
	if err != nil {
		return err
	}

	project, err := a.client.CreateProject(ctx, api.ProjectInput{
		Title:       title,
		Description: description,
		Tags:        tags,
		DemoURL:     demoURL,
		GithubURL:   githubURL,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Published %q (%s)\n", project.Title, project.ID)
	return nil
}
