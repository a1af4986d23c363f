package models

// DefaultFanArtAuthor is credited for uploads; there are no user accounts.
const DefaultFanArtAuthor = "Anonymous"

// FanArtItem is an uploaded image. Image holds a data URI.
type FanArtItem struct {
	ID      string `json:"id"`
	Image   string `json:"image"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Created int64  `json:"created"`
	Likes   int    `json:"likes"`
}

// Liked returns a copy with one more like.
func (f FanArtItem) Liked() FanArtItem {
	f.Likes++
	return f
}
