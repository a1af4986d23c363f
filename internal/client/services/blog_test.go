package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/client/models"
	"github.com/dmitrijs2005/realverse/internal/client/store"
	"github.com/dmitrijs2005/realverse/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blogID(p models.BlogPost) string { return p.ID }

func TestBlogService_PublishPrepends(t *testing.T) {
	svc := NewBlogService(newCollection(t, medium.NewMemory(), store.KeyBlog, []models.BlogPost{{ID: "seed"}}, blogID), fixedClock)

	ch, err := svc.Publish(context.Background(), " If Sora ran a clinic ", " She would... ")
	require.NoError(t, err)
	assert.Equal(t, models.BlogPost{ID: ch.Entity.ID, Title: "If Sora ran a clinic", Body: "She would...", Created: fixedNow.UnixMilli()}, ch.Entity)
	assert.Equal(t, ch.Items, svc.List())
	assert.Equal(t, "seed", svc.List()[1].ID)
}

func TestBlogService_PublishValidates(t *testing.T) {
	svc := NewBlogService(newCollection[models.BlogPost](t, medium.NewMemory(), store.KeyBlog, nil, blogID), fixedClock)

	_, err := svc.Publish(context.Background(), "title", "")
	require.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, svc.List())
}
