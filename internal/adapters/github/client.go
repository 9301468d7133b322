package github

import (
	"context"
	"fmt"
	"net/url"
)

// LatestClosedPull returns the most recently updated closed pull request of
// the repo, or ErrNotFound when there is none. Callers must check MergedAt
// themselves — closed does not mean merged.
func (c *Client) LatestClosedPull(ctx context.Context, owner, repo string) (*Pull, error) {
	q := url.Values{}
	q.Set("state", "closed")
	q.Set("sort", "updated")
	q.Set("direction", "desc")
	q.Set("per_page", "1")

	var pulls []Pull
	if err := c.doJSON(ctx, "GET", fmt.Sprintf("/repos/%s/%s/pulls", owner, repo), q, &pulls); err != nil {
		return nil, err
	}
	if len(pulls) == 0 {
		return nil, ErrNotFound
	}
	return &pulls[0], nil
}
