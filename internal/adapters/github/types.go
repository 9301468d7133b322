package github

import "time"

// Pull is the slice of the pulls API payload the feed poller cares about.
// MergedAt is nil for closed-but-unmerged pulls.
type Pull struct {
	HTMLURL  string     `json:"html_url"`
	Title    string     `json:"title"`
	Body     string     `json:"body"`
	MergedAt *time.Time `json:"merged_at"`
}
