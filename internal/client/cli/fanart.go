package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/realverse/internal/client/ingest"
	"github.com/dmitrijs2005/realverse/internal/common"
)

func (s *Shell) FanArt(ctx context.Context) error {
	list := s.app.ListFanArt()
	if len(list) == 0 {
		s.printf("The gallery is empty. Try 'upload <path>'\n")
		return nil
	}
	for _, f := range list {
		mediaType, data, err := ingest.DecodeDataURI(f.Image)
		size := "?"
		if err == nil {
			size = fmt.Sprintf("%s, %d bytes", mediaType, len(data))
		}
		s.printf("%-12s %s by %s [%s] %s, likes: %d\n",
			f.ID, f.Title, f.Author, size, formatTime(f.Created), f.Likes)
	}
	return nil
}

// Upload reads the file in the background; the result is printed when it lands.
func (s *Shell) Upload(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	pending := s.app.AddFanArt(ctx, ingest.Upload{Name: filepath.Base(path), Reader: f})
	s.printf("Uploading %s...\n", filepath.Base(path))

	s.uploads.Add(1)
	go func() {
		defer s.uploads.Done()
		defer f.Close()

		ch, err := pending.Wait(ctx)
		if err := s.saved(ctx, "Fan art", ch.Entity.ID, err); err != nil {
			s.printf("Upload of %s failed: %v\n", filepath.Base(path), err)
		}
	}()
	return nil
}

func (s *Shell) Like(ctx context.Context, id string) error {
	ch, err := s.app.LikeFanArt(ctx, id)
	if err != nil && !errors.Is(err, common.ErrPersistFailed) {
		return err
	}
	s.printf("%s now has %d likes\n", ch.Entity.Title, ch.Entity.Likes)
	if err != nil {
		return s.saved(ctx, "Fan art", id, err)
	}
	return nil
}

func formatTime(ms int64) string {
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
