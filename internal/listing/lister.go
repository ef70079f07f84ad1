// Package listing renders the blog index entries. It is a pure
// projection: the caller owns ordering and the lister owns nothing.
package listing

import "time"

// dateLayout renders dates as zero-padded day.month.year, e.g. 15.01.2023.
const dateLayout = "02.01.2006"

// Post is one entry to list: a display title, the link target, and the
// publish date. Fields are used verbatim.
type Post struct {
	Title       string
	RelativeURL string
	Date        time.Time
}

// Fragment is the rendered form of one Post: a link wrapping a heading,
// plus the formatted date text. Templates decide the surrounding markup.
type Fragment struct {
	HREF     string
	Heading  string
	DateText string
}

// Render maps posts to fragments one-to-one, preserving input order.
// It does not sort, validate, or mutate its input.
func Render(posts []Post) []Fragment {
	fragments := make([]Fragment, len(posts))
	for i, p := range posts {
		fragments[i] = Fragment{
			HREF:     p.RelativeURL,
			Heading:  p.Title,
			DateText: p.Date.Format(dateLayout),
		}
	}
	return fragments
}
