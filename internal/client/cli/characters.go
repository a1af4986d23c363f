package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/realverse/internal/client/models"
)

func (s *Shell) Characters(ctx context.Context) error {
	list := s.app.ListCharacters()
	if len(list) == 0 {
		s.printf("No characters yet\n")
		return nil
	}
	for _, c := range list {
		s.printf("%-12s %s (%s), %s\n", c.ID, c.Name, c.Anime, c.Role)
	}
	return nil
}

func (s *Shell) Character(ctx context.Context, id string) error {
	c, err := s.app.GetCharacter(id)
	if err != nil {
		return err
	}
	s.printf("%s\n  anime: %s\n  role:  %s\n", c.Name, c.Anime, c.Role)
	if len(c.Tags) > 0 {
		s.printf("  tags:  %s\n", strings.Join(c.Tags, ", "))
	}
	if c.Image != "" {
		s.printf("  image: %s\n", c.Image)
	}
	if c.Bio != "" {
		s.printf("\n%s\n", c.Bio)
	}
	return nil
}

func (s *Shell) AddCharacter(ctx context.Context) error {
	var d models.CharacterDraft
	var err error

	if d.Name, err = s.ask("Name"); err != nil {
		return err
	}
	if d.Anime, err = s.ask("Anime"); err != nil {
		return err
	}
	if d.Role, err = s.ask("Role"); err != nil {
		return err
	}
	tags, err := s.ask("Tags (comma separated)")
	if err != nil {
		return err
	}
	d.Tags = models.ParseTags(tags)
	if d.Image, err = s.ask("Image URL (optional)"); err != nil {
		return err
	}
	if d.Bio, err = s.askMultiline("Bio"); err != nil {
		return err
	}

	ch, err := s.app.AddCharacter(ctx, d)
	return s.saved(ctx, "Character", ch.Entity.ID, err)
}
