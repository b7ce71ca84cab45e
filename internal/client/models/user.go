// Package models defines the client-side representations of DevHub
// resources as they appear on the wire. All identifiers and timestamps are
// server-assigned; the client treats them as opaque strings.
package models

// User is a DevHub account profile. The copy held by the client is a cache
// scoped to the current session; the backend owns the authoritative record.
type User struct {
	ID           string   `json:"_id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	FullName     string   `json:"fullName"`
	Avatar       string   `json:"avatar,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Skills       []string `json:"skills"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LinkedinURL  string   `json:"linkedinUrl,omitempty"`
	PortfolioURL string   `json:"portfolioUrl,omitempty"`
	Location     string   `json:"location,omitempty"`
	Followers    int      `json:"followers"`
	Following    int      `json:"following"`
	Projects     int      `json:"projects"`
	JoinDate     string   `json:"joinDate"`
}
