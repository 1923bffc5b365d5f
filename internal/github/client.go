package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v84/github"
)

const defaultAPIBase = "https://api.github.com"

// GitAdapter is the slice of go-github's GitService the client uses.
type GitAdapter interface {
	ListMatchingRefs(ctx context.Context, owner, repo, ref string) ([]*gh.Reference, *gh.Response, error)
	CreateRef(ctx context.Context, owner, repo string, ref gh.CreateRef) (*gh.Reference, *gh.Response, error)
	UpdateRef(ctx context.Context, owner, repo, ref string, payload gh.UpdateRef) (*gh.Reference, *gh.Response, error)
	DeleteRef(ctx context.Context, owner, repo, ref string) (*gh.Response, error)
}

// RepositoriesAdapter is the slice of go-github's RepositoriesService the
// client uses for releases.
type RepositoriesAdapter interface {
	ListReleases(ctx context.Context, owner, repo string, opts *gh.ListOptions) ([]*gh.RepositoryRelease, *gh.Response, error)
	GetRelease(ctx context.Context, owner, repo string, id int64) (*gh.RepositoryRelease, *gh.Response, error)
	GetLatestRelease(ctx context.Context, owner, repo string) (*gh.RepositoryRelease, *gh.Response, error)
	CreateRelease(ctx context.Context, owner, repo string, release *gh.RepositoryRelease) (*gh.RepositoryRelease, *gh.Response, error)
	EditRelease(ctx context.Context, owner, repo string, id int64, release *gh.RepositoryRelease) (*gh.RepositoryRelease, *gh.Response, error)
	DeleteRelease(ctx context.Context, owner, repo string, id int64) (*gh.Response, error)
}

// Client is the platform surface the snapshot builder and remediation
// actions consume. Create is non-forcing; Update always force-moves.
type Client interface {
	ListTagRefs(ctx context.Context) ([]*gh.Reference, error)
	ListBranchRefs(ctx context.Context) ([]*gh.Reference, error)
	ListReleases(ctx context.Context) ([]*gh.RepositoryRelease, error)
	GetRelease(ctx context.Context, id int64) (*gh.RepositoryRelease, error)
	GetLatestRelease(ctx context.Context) (*gh.RepositoryRelease, error)
	CreateRef(ctx context.Context, refPath, sha string) error
	UpdateRef(ctx context.Context, refPath, sha string) error
	DeleteRef(ctx context.Context, refPath string) error
	CreateRelease(ctx context.Context, release *gh.RepositoryRelease) (*gh.RepositoryRelease, error)
	EditRelease(ctx context.Context, id int64, release *gh.RepositoryRelease) (*gh.RepositoryRelease, error)
	DeleteRelease(ctx context.Context, id int64) error
}

type client struct {
	owner        string
	repo         string
	git          GitAdapter
	repositories RepositoriesAdapter
	retry        retryConfig
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

// New builds a Client for one repository. apiBase only matters for GitHub
// Enterprise; the public default is recognized and left alone.
func New(token, owner, repo, apiBase string) (Client, error) {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	ghc := gh.NewClient(httpClient)
	if apiBase != "" && apiBase != defaultAPIBase {
		var err error
		ghc, err = ghc.WithEnterpriseURLs(apiBase, apiBase)
		if err != nil {
			return nil, err
		}
	}
	return &client{
		owner:        owner,
		repo:         repo,
		git:          ghc.Git,
		repositories: ghc.Repositories,
		retry:        defaultRetryConfig(),
	}, nil
}
