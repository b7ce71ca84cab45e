package fetch

import (
	"context"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/client/models"
)

// UserDirectory is the paginated, searchable member listing.
type UserDirectory struct {
	f *Fetcher[api.UserListParams, *api.UserPage]
}

func NewUserDirectory(client api.Client) *UserDirectory {
	fn := func(ctx context.Context, p api.UserListParams) (*api.UserPage, error) {
		if p.Page == 0 {
			p.Page = defaultPage
		}
		if p.Limit == 0 {
			p.Limit = defaultLimit
		}
		return client.ListUsers(ctx, p)
	}
	return &UserDirectory{f: NewFetcher(fn, "failed to fetch users")}
}

func (ud *UserDirectory) Fetch(ctx context.Context, p api.UserListParams) {
	ud.f.Fetch(ctx, p)
}

func (ud *UserDirectory) Refetch(ctx context.Context) {
	ud.f.Refetch(ctx)
}

func (ud *UserDirectory) Users() []models.User {
	if page := ud.f.Snapshot().Data; page != nil {
		return page.Users
	}
	return nil
}

func (ud *UserDirectory) Total() int {
	if page := ud.f.Snapshot().Data; page != nil {
		return page.Total
	}
	return 0
}

func (ud *UserDirectory) Pages() int {
	if page := ud.f.Snapshot().Data; page != nil {
		return page.Pages
	}
	return 0
}

func (ud *UserDirectory) CurrentPage() int {
	if page := ud.f.Snapshot().Data; page != nil {
		return page.Page
	}
	return 0
}

func (ud *UserDirectory) Loading() bool { return ud.f.Snapshot().Loading }
func (ud *UserDirectory) Err() string   { return ud.f.Snapshot().Err }
