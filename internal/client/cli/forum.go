package cli

import (
	"context"
)

func (s *Shell) Threads(ctx context.Context) error {
	list := s.app.ListThreads()
	if len(list) == 0 {
		s.printf("No threads yet. Start one with 'newthread'\n")
		return nil
	}
	for _, t := range list {
		s.printf("%-12s %s (%d posts)\n", t.ID, t.Title, len(t.Posts))
	}
	return nil
}

func (s *Shell) Thread(ctx context.Context, id string) error {
	t, err := s.app.GetThread(id)
	if err != nil {
		return err
	}
	s.printf("%s\n  started %s\n", t.Title, formatTime(t.Created))
	for _, p := range t.Posts {
		s.printf("\n%s, %s:\n%s\n", p.Author, formatTime(p.Created), p.Body)
	}
	return nil
}

func (s *Shell) NewThread(ctx context.Context) error {
	title, err := s.ask("Thread title")
	if err != nil {
		return err
	}
	ch, err := s.app.CreateThread(ctx, title)
	return s.saved(ctx, "Thread", ch.Entity.ID, err)
}

func (s *Shell) Reply(ctx context.Context, id string) error {
	if _, err := s.app.GetThread(id); err != nil {
		return err
	}
	author, err := s.ask("Your name (empty for 'You')")
	if err != nil {
		return err
	}
	body, err := s.askMultiline("Reply")
	if err != nil {
		return err
	}
	ch, err := s.app.ReplyToThread(ctx, id, body, author)
	return s.saved(ctx, "Thread", ch.Entity.ID, err)
}
