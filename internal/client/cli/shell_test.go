package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/realverse/internal/client/app"
	"github.com/dmitrijs2005/realverse/internal/client/identity"
	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/client/store"
	"github.com/dmitrijs2005/realverse/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shellNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, m medium.Medium) *app.App {
	t.Helper()
	return app.New(context.Background(), app.Deps{
		Medium: m,
		IDs:    identity.NewSequence(t.Name()),
		Clock:  func() time.Time { return shellNow },
	})
}

func runShell(t *testing.T, a *app.App, lines ...string) string {
	t.Helper()
	capturePrints(t)
	var out bytes.Buffer
	sh := NewShell(a, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, logging.Discard())
	sh.Run(context.Background())
	return out.String()
}

func TestShell_AddAndShowCharacter(t *testing.T) {
	m := medium.NewMemory()
	a := newTestApp(t, m)

	out := runShell(t, a,
		"addchar",
		"Ren",
		"Iron Harbor",
		"Rival",
		"fast, fast, calm",
		"",
		"Grew up at sea.",
		"",
		"characters",
		"exit",
	)

	list := a.ListCharacters()
	require.Len(t, list, 4)
	ren := list[0]
	assert.Equal(t, "Ren", ren.Name)
	assert.Equal(t, []string{"fast", "calm"}, ren.Tags)
	assert.Equal(t, "Grew up at sea.", ren.Bio)
	assert.Contains(t, out, "Character "+ren.ID+" saved")
	assert.Contains(t, out, "Ren (Iron Harbor), Rival")

	_, ok, err := m.Get(context.Background(), store.KeyCharacters)
	require.NoError(t, err)
	assert.True(t, ok)

	out = runShell(t, a, "character "+ren.ID, "character nope")
	assert.Contains(t, out, "tags:  fast, calm")
	assert.Contains(t, out, "Grew up at sea.")
}

func TestShell_AddCharacterValidationFails(t *testing.T) {
	a := newTestApp(t, medium.NewMemory())
	printed := capturePrints(t)

	var out bytes.Buffer
	sh := NewShell(a, strings.NewReader("addchar\n\nAnime\n\n\n\n\n"), &out, logging.Discard())
	sh.Run(context.Background())

	assert.Len(t, a.ListCharacters(), 3)
	found := false
	for _, p := range *printed {
		if strings.HasPrefix(p, "Error:") && strings.Contains(p, "name, role") {
			found = true
		}
	}
	assert.True(t, found, "validation error should be reported: %v", *printed)
}

func TestShell_ForumAndBlog(t *testing.T) {
	a := newTestApp(t, medium.NewMemory())

	runShell(t, a,
		"newthread",
		"Best opening?",
		"publish",
		"Season review",
		"It was great.",
		"",
	)
	thread := a.ListThreads()[0]
	assert.Equal(t, "Best opening?", thread.Title)

	out := runShell(t, a,
		"reply "+thread.ID,
		"",
		"The first one.",
		"",
		"thread "+thread.ID,
		"threads",
		"blog",
	)

	got, err := a.GetThread(thread.ID)
	require.NoError(t, err)
	require.Len(t, got.Posts, 1)
	assert.Equal(t, "You", got.Posts[0].Author)
	assert.Contains(t, out, "You, ")
	assert.Contains(t, out, "The first one.")
	assert.Contains(t, out, "Best opening? (1 posts)")
	assert.Contains(t, out, "== Season review (")
}

func TestShell_UploadAndLike(t *testing.T) {
	a := newTestApp(t, medium.NewMemory())

	path := filepath.Join(t.TempDir(), "sora.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), 0o600))

	out := runShell(t, a, "upload "+path, "fanart")
	assert.Contains(t, out, "Uploading sora.png...")

	require.Len(t, a.ListFanArt(), 1)
	item := a.ListFanArt()[0]
	assert.Equal(t, "sora.png", item.Title)
	assert.Contains(t, out, "Fan art "+item.ID+" saved")

	out = runShell(t, a, "like "+item.ID, "like "+item.ID, "fanart")
	assert.Contains(t, out, "sora.png now has 2 likes")
	assert.Contains(t, out, "image/png")
	assert.Equal(t, 2, a.ListFanArt()[0].Likes)
}

func TestShell_UploadMissingFile(t *testing.T) {
	a := newTestApp(t, medium.NewMemory())
	printed := capturePrints(t)

	var out bytes.Buffer
	sh := NewShell(a, strings.NewReader("upload /does/not/exist.png\n"), &out, logging.Discard())
	sh.Run(context.Background())

	assert.Empty(t, a.ListFanArt())
	assert.True(t, slices.ContainsFunc(*printed, func(p string) bool {
		return strings.HasPrefix(p, "Error:") && strings.Contains(p, "exist.png")
	}), "open error should be reported: %v", *printed)
}

func TestShell_UploadRejectedFile(t *testing.T) {
	a := newTestApp(t, medium.NewMemory())

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not an image"), 0o600))

	out := runShell(t, a, "upload "+path)
	assert.Contains(t, out, "Upload of notes.txt failed")
	assert.Empty(t, a.ListFanArt())
}

func TestShell_Quiz(t *testing.T) {
	a := newTestApp(t, medium.NewMemory())

	out := runShell(t, a, "answer 1 3", "submit", "answer 2 2", "submit", "quiz")
	assert.Contains(t, out, "Please answer every question first (missing: 2)")
	assert.Contains(t, out, "You match Mika — energetic and fun! (score 4)")
	assert.Contains(t, out, "* 3) Relax at home")
	assert.Contains(t, out, "Last result:")

	out = runShell(t, a, "reset", "quiz")
	assert.Contains(t, out, "Quiz reset")
	assert.NotContains(t, out, "*")
}

func TestShell_AnswerRejectsBadInput(t *testing.T) {
	a := newTestApp(t, medium.NewMemory())
	printed := capturePrints(t)

	var out bytes.Buffer
	sh := NewShell(a, strings.NewReader("answer x 1\nanswer 1 9\n"), &out, logging.Discard())
	sh.Run(context.Background())

	var errs []string
	for _, p := range *printed {
		if strings.HasPrefix(p, "Error:") {
			errs = append(errs, p)
		}
	}
	assert.Len(t, errs, 2)
}
