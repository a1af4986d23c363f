package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/realverse/internal/client/collection"
	"github.com/dmitrijs2005/realverse/internal/client/identity"
	"github.com/dmitrijs2005/realverse/internal/client/models"
)

const maxPostIDAttempts = 16

type ForumService interface {
	List() []models.ForumThread
	Get(id string) (models.ForumThread, error)
	Create(ctx context.Context, title string) (Change[models.ForumThread], error)
	// Reply appends a post to the thread, keeping earlier posts in order.
	Reply(ctx context.Context, threadID, body, author string) (Change[models.ForumThread], error)
}

type forumService struct {
	threads *collection.Collection[models.ForumThread]
	postIDs identity.IDGenerator
	now     Clock
}

// NewForumService builds the forum. postIDs generates post ids; they only
// need to be unique within a thread.
func NewForumService(c *collection.Collection[models.ForumThread], postIDs identity.IDGenerator, now Clock) ForumService {
	return &forumService{threads: c, postIDs: postIDs, now: now}
}

func (s *forumService) List() []models.ForumThread {
	return s.threads.List()
}

func (s *forumService) Get(id string) (models.ForumThread, error) {
	return s.threads.Get(id)
}

func (s *forumService) Create(ctx context.Context, title string) (Change[models.ForumThread], error) {
	title, err := models.ThreadTitle(title)
	if err != nil {
		return Change[models.ForumThread]{}, err
	}
	created := s.now().UnixMilli()
	return s.threads.Add(ctx, func(id string) models.ForumThread {
		return models.ForumThread{ID: id, Title: title, Posts: []models.Post{}, Created: created}
	})
}

func (s *forumService) Reply(ctx context.Context, threadID, body, author string) (Change[models.ForumThread], error) {
	body, author, err := models.ReplyInput(body, author)
	if err != nil {
		return Change[models.ForumThread]{}, err
	}
	created := s.now().UnixMilli()
	return s.threads.UpdateByID(ctx, threadID, func(t models.ForumThread) models.ForumThread {
		return t.WithPost(models.Post{
			ID:      s.freshPostID(t.Posts),
			Author:  author,
			Body:    body,
			Created: created,
		})
	})
}

// freshPostID draws ids until one is unused in posts. A generator that keeps
// colliding gets the post number appended instead.
func (s *forumService) freshPostID(posts []models.Post) string {
	var id string
	for attempt := 0; attempt < maxPostIDAttempts; attempt++ {
		id = s.postIDs.NewID()
		if id != "" && !slices.ContainsFunc(posts, func(p models.Post) bool { return p.ID == id }) {
			return id
		}
	}
	return fmt.Sprintf("%s-%d", id, len(posts)+1)
}
