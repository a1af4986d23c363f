package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/realverse/internal/common"
)

// DefaultReplyAuthor is used when a reply is posted without an author.
const DefaultReplyAuthor = "You"

// ForumThread is a discussion with its posts in append order.
type ForumThread struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Posts   []Post `json:"posts"`
	Created int64  `json:"created"`
}

// Post is a single message in a thread. Posts never change once created.
type Post struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Body    string `json:"body"`
	Created int64  `json:"created"`
}

// WithPost returns a copy of the thread with p appended. The receiver's posts
// slice is never written to.
func (t ForumThread) WithPost(p Post) ForumThread {
	posts := make([]Post, 0, len(t.Posts)+1)
	posts = append(posts, t.Posts...)
	t.Posts = append(posts, p)
	return t
}

// ThreadTitle trims title and rejects an empty one.
func ThreadTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: thread title required", common.ErrValidation)
	}
	return title, nil
}

// ReplyInput trims body and author, rejects an empty body and defaults the
// author to DefaultReplyAuthor.
func ReplyInput(body, author string) (string, string, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return "", "", fmt.Errorf("%w: reply body required", common.ErrValidation)
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = DefaultReplyAuthor
	}
	return body, author, nil
}
