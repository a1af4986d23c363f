package services

import (
	"context"

	"github.com/dmitrijs2005/realverse/internal/client/collection"
	"github.com/dmitrijs2005/realverse/internal/client/models"
)

type CharacterService interface {
	List() []models.Character
	Get(id string) (models.Character, error)
	Add(ctx context.Context, draft models.CharacterDraft) (Change[models.Character], error)
}

type characterService struct {
	characters *collection.Collection[models.Character]
}

func NewCharacterService(c *collection.Collection[models.Character]) CharacterService {
	return &characterService{characters: c}
}

func (s *characterService) List() []models.Character {
	return s.characters.List()
}

func (s *characterService) Get(id string) (models.Character, error) {
	return s.characters.Get(id)
}

func (s *characterService) Add(ctx context.Context, draft models.CharacterDraft) (Change[models.Character], error) {
	if err := draft.Validate(); err != nil {
		return Change[models.Character]{}, err
	}
	return s.characters.Add(ctx, draft.Build)
}
