// Package site builds the static site: it collects content, renders
// pages through templates, and writes feeds and static files.
package site

import (
	"time"

	"blog/internal/content"
	"blog/internal/listing"
)

// Site holds global site data available to every template.
type Site struct {
	Title    string
	BaseURL  string
	Author   string
	Posts    []content.Post
	PostList []listing.Fragment

	feedLimit int
}

// FeedPosts returns the most recent posts for feeds.
func (s *Site) FeedPosts() []content.Post {
	if len(s.Posts) <= s.feedLimit {
		return s.Posts
	}
	return s.Posts[:s.feedLimit]
}

// UpdatedAtom returns the most recent post date in Atom format.
func (s *Site) UpdatedAtom() string {
	for _, p := range s.Posts {
		if !p.Date.IsZero() {
			return p.DateAtom()
		}
	}
	return time.Now().Format(time.RFC3339)
}

// setPosts stores the posts and derives the index fragments from them.
func (s *Site) setPosts(posts []content.Post) {
	s.Posts = posts

	entries := make([]listing.Post, len(posts))
	for i, p := range posts {
		entries[i] = listing.Post{
			Title:       p.Title,
			RelativeURL: p.URL,
			Date:        p.Date,
		}
	}
	s.PostList = listing.Render(entries)
}
