package services

import (
	"context"

	"github.com/dmitrijs2005/realverse/internal/client/collection"
	"github.com/dmitrijs2005/realverse/internal/client/ingest"
	"github.com/dmitrijs2005/realverse/internal/client/models"
	"github.com/dmitrijs2005/realverse/internal/logging"
)

type FanArtService interface {
	List() []models.FanArtItem
	// Upload starts ingesting the file and adds the item once the read
	// completes. The collection is unchanged until then.
	Upload(ctx context.Context, up ingest.Upload) *PendingUpload
	Like(ctx context.Context, id string) (Change[models.FanArtItem], error)
}

// PendingUpload completes once the uploaded file was read and, on success,
// added to the gallery.
type PendingUpload struct {
	done   chan struct{}
	change Change[models.FanArtItem]
	err    error
}

// Done is closed when the upload has been processed.
func (p *PendingUpload) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the upload has been processed or ctx is done.
func (p *PendingUpload) Wait(ctx context.Context) (Change[models.FanArtItem], error) {
	select {
	case <-p.done:
		return p.change, p.err
	case <-ctx.Done():
		return Change[models.FanArtItem]{}, ctx.Err()
	}
}

type fanArtService struct {
	items    *collection.Collection[models.FanArtItem]
	ingester *ingest.Ingester
	now      Clock
	log      logging.Logger
}

func NewFanArtService(c *collection.Collection[models.FanArtItem], in *ingest.Ingester, now Clock, log logging.Logger) FanArtService {
	return &fanArtService{items: c, ingester: in, now: now, log: log}
}

func (s *fanArtService) List() []models.FanArtItem {
	return s.items.List()
}

func (s *fanArtService) Upload(ctx context.Context, up ingest.Upload) *PendingUpload {
	p := &PendingUpload{done: make(chan struct{})}
	task := s.ingester.Start(ctx, up)

	go func() {
		defer close(p.done)

		img, err := task.Wait(ctx)
		if err != nil {
			s.log.Warn(ctx, "fan art upload rejected", "file", up.Name, "error", err)
			p.err = err
			return
		}

		p.change, p.err = s.items.Add(ctx, func(id string) models.FanArtItem {
			return models.FanArtItem{
				ID:      id,
				Image:   img.DataURI,
				Title:   img.Name,
				Author:  models.DefaultFanArtAuthor,
				Created: s.now().UnixMilli(),
			}
		})
	}()

	return p
}

func (s *fanArtService) Like(ctx context.Context, id string) (Change[models.FanArtItem], error) {
	return s.items.UpdateByID(ctx, id, models.FanArtItem.Liked)
}
