package models

// ProjectAuthor is the denormalized author summary embedded in a project.
type ProjectAuthor struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Project is a showcased project. Star/view counters are maintained by the
// server; the client never adjusts them locally beyond what a response says.
type Project struct {
	ID          string        `json:"_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       string        `json:"image,omitempty"`
	Tags        []string      `json:"tags"`
	Author      ProjectAuthor `json:"author"`
	AuthorID    string        `json:"authorId"`
	DemoURL     string        `json:"demoUrl,omitempty"`
	GithubURL   string        `json:"githubUrl,omitempty"`
	Stars       int           `json:"stars"`
	Views       int           `json:"views"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}
