package services

import (
	"context"

	"github.com/dmitrijs2005/realverse/internal/client/collection"
	"github.com/dmitrijs2005/realverse/internal/client/models"
)

type BlogService interface {
	List() []models.BlogPost
	Publish(ctx context.Context, title, body string) (Change[models.BlogPost], error)
}

type blogService struct {
	posts *collection.Collection[models.BlogPost]
	now   Clock
}

func NewBlogService(c *collection.Collection[models.BlogPost], now Clock) BlogService {
	return &blogService{posts: c, now: now}
}

func (s *blogService) List() []models.BlogPost {
	return s.posts.List()
}

func (s *blogService) Publish(ctx context.Context, title, body string) (Change[models.BlogPost], error) {
	title, body, err := models.BlogInput(title, body)
	if err != nil {
		return Change[models.BlogPost]{}, err
	}
	created := s.now().UnixMilli()
	return s.posts.Add(ctx, func(id string) models.BlogPost {
		return models.BlogPost{ID: id, Title: title, Body: body, Created: created}
	})
}
