package models

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/realverse/internal/common"
)

// Character is a character profile.
type Character struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Anime string   `json:"anime"`
	Role  string   `json:"role"`
	Tags  []string `json:"tags"`
	Image string   `json:"image"`
	Bio   string   `json:"bio"`
}

// CharacterDraft is the user input for a new character. Tags are already
// parsed; see ParseTags.
type CharacterDraft struct {
	Name  string
	Anime string
	Role  string
	Tags  []string
	Image string
	Bio   string
}

// Validate requires name, anime and role.
func (d CharacterDraft) Validate() error {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Anime) == "" {
		missing = append(missing, "anime")
	}
	if strings.TrimSpace(d.Role) == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: character %s required", common.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Build turns the draft into a Character with the given id.
func (d CharacterDraft) Build(id string) Character {
	return Character{
		ID:    id,
		Name:  strings.TrimSpace(d.Name),
		Anime: strings.TrimSpace(d.Anime),
		Role:  strings.TrimSpace(d.Role),
		Tags:  append([]string(nil), d.Tags...),
		Image: strings.TrimSpace(d.Image),
		Bio:   d.Bio,
	}
}

// ParseTags splits a comma separated list, trims every tag, drops empty ones
// and removes duplicates keeping the first occurrence.
func ParseTags(s string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
