package sources

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_ytweb/internal/jsontree"
)

// ErrNoMorePages is returned by Paginator.Next once the listing is exhausted.
var ErrNoMorePages = errors.New("no more pages")

// ContinuationFetcher fetches the response for a continuation token.
type ContinuationFetcher interface {
	FetchContinuation(ctx context.Context, token string) (jsontree.Node, error)
}

// Paginator walks a continuation-token listing. It is either in HasMore(token)
// or Done; Done is terminal. Tokens are assumed never to repeat.
type Paginator struct {
	fetcher ContinuationFetcher
	token   string
}

// NewPaginator starts from the first page's video list. A list without a
// continuation item starts in Done.
func NewPaginator(fetcher ContinuationFetcher, firstPage jsontree.Node) *Paginator {
	token, _ := ExtractPlaylistContinuationToken(firstPage)
	return &Paginator{fetcher: fetcher, token: token}
}

// HasMore reports whether another page can be fetched.
func (p *Paginator) HasMore() bool { return p.token != "" }

// Token returns the pending continuation token, or "" when Done.
func (p *Paginator) Token() string { return p.token }

// Next fetches the pending page and returns its item batch. On a fetch error
// the state is unchanged, so the same page can be requested again.
func (p *Paginator) Next(ctx context.Context) (jsontree.Node, error) {
	if p.token == "" {
		return jsontree.Node{}, ErrNoMorePages
	}
	root, err := p.fetcher.FetchContinuation(ctx, p.token)
	if err != nil {
		return jsontree.Node{}, err
	}
	batch := ExtractPlaylistContinuationVideos(root)
	p.token, _ = ExtractPlaylistContinuationToken(batch)
	return batch, nil
}
