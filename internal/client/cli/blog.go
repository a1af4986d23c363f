package cli

import (
	"context"
)

func (s *Shell) Blog(ctx context.Context) error {
	list := s.app.ListBlogPosts()
	if len(list) == 0 {
		s.printf("No posts yet\n")
		return nil
	}
	for _, p := range list {
		s.printf("== %s (%s)\n%s\n\n", p.Title, formatTime(p.Created), p.Body)
	}
	return nil
}

func (s *Shell) Publish(ctx context.Context) error {
	title, err := s.ask("Title")
	if err != nil {
		return err
	}
	body, err := s.askMultiline("Body")
	if err != nil {
		return err
	}
	ch, err := s.app.PublishBlogPost(ctx, title, body)
	return s.saved(ctx, "Post", ch.Entity.ID, err)
}
