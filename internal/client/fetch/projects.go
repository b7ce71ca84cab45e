package fetch

import (
	"context"

	"github.com/dmitrijs2005/devhub/internal/client/api"
	"github.com/dmitrijs2005/devhub/internal/client/models"
)

// Defaults applied when the caller leaves pagination fields zero.
const (
	defaultPage  = 1
	defaultLimit = 12
)

// ProjectFeed is the paginated project listing with search/tag/author
// filters.
type ProjectFeed struct {
	f *Fetcher[api.ProjectListParams, *api.ProjectPage]
}

func NewProjectFeed(client api.Client) *ProjectFeed {
	fn := func(ctx context.Context, p api.ProjectListParams) (*api.ProjectPage, error) {
		if p.Page == 0 {
			p.Page = defaultPage
		}
		if p.Limit == 0 {
			p.Limit = defaultLimit
		}
		return client.ListProjects(ctx, p)
	}
	return &ProjectFeed{f: NewFetcher(fn, "failed to fetch projects")}
}

func (pf *ProjectFeed) Fetch(ctx context.Context, p api.ProjectListParams) {
	pf.f.Fetch(ctx, p)
}

func (pf *ProjectFeed) Refetch(ctx context.Context) {
	pf.f.Refetch(ctx)
}

// Projects returns the committed result set, nil before the first success.
func (pf *ProjectFeed) Projects() []models.Project {
	if page := pf.f.Snapshot().Data; page != nil {
		return page.Projects
	}
	return nil
}

func (pf *ProjectFeed) Total() int {
	if page := pf.f.Snapshot().Data; page != nil {
		return page.Total
	}
	return 0
}

func (pf *ProjectFeed) Pages() int {
	if page := pf.f.Snapshot().Data; page != nil {
		return page.Pages
	}
	return 0
}

// CurrentPage is the page number reported by the server for the committed
// result set.
func (pf *ProjectFeed) CurrentPage() int {
	if page := pf.f.Snapshot().Data; page != nil {
		return page.Page
	}
	return 0
}

func (pf *ProjectFeed) Loading() bool { return pf.f.Snapshot().Loading }
func (pf *ProjectFeed) Err() string   { return pf.f.Snapshot().Err }
