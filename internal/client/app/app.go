// Package app is the command surface the front-end talks to. It opens one
// store per content kind on the configured medium, seeding each from the
// sample content when nothing (or nothing readable) is stored, and owns the
// quiz session.
package app

import (
	"context"
	"time"

	"github.com/dmitrijs2005/realverse/internal/client/collection"
	"github.com/dmitrijs2005/realverse/internal/client/identity"
	"github.com/dmitrijs2005/realverse/internal/client/ingest"
	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/client/models"
	"github.com/dmitrijs2005/realverse/internal/client/quiz"
	"github.com/dmitrijs2005/realverse/internal/client/seed"
	"github.com/dmitrijs2005/realverse/internal/client/services"
	"github.com/dmitrijs2005/realverse/internal/client/store"
	"github.com/dmitrijs2005/realverse/internal/logging"
)

// Deps are the collaborators of an App. Zero values get defaults: random
// ids, the wall clock, a discarding logger, the built-in quiz and
// ingest.DefaultMaxBytes.
type Deps struct {
	Medium        medium.Medium
	IDs           identity.IDGenerator
	Clock         services.Clock
	Logger        logging.Logger
	Quiz          *quiz.Definition
	MaxImageBytes int64
}

type App struct {
	characters services.CharacterService
	fanArt     services.FanArtService
	forum      services.ForumService
	blog       services.BlogService
	quiz       *quiz.Session
	log        logging.Logger
}

// New loads every collection from d.Medium, which is required.
func New(ctx context.Context, d Deps) *App {
	if d.IDs == nil {
		d.IDs = identity.Random{}
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	def := seed.Quiz()
	if d.Quiz != nil {
		def = *d.Quiz
	}

	now := d.Clock()
	characters := store.Open(ctx, d.Medium, store.KeyCharacters, seed.Characters(), d.Logger)
	fanArt := store.Open(ctx, d.Medium, store.KeyFanArt, seed.FanArt(), d.Logger)
	forum := store.Open(ctx, d.Medium, store.KeyForum, seed.Threads(d.IDs, now), d.Logger)
	blog := store.Open(ctx, d.Medium, store.KeyBlog, seed.BlogPosts(d.IDs, now), d.Logger)

	a := &App{
		characters: services.NewCharacterService(
			collection.New(characters, d.IDs, func(c models.Character) string { return c.ID })),
		fanArt: services.NewFanArtService(
			collection.New(fanArt, d.IDs, func(f models.FanArtItem) string { return f.ID }),
			ingest.New(d.MaxImageBytes), d.Clock, d.Logger.With("component", "fanart")),
		forum: services.NewForumService(
			collection.New(forum, d.IDs, func(t models.ForumThread) string { return t.ID }), d.IDs, d.Clock),
		blog: services.NewBlogService(
			collection.New(blog, d.IDs, func(p models.BlogPost) string { return p.ID }), d.Clock),
		quiz: quiz.NewSession(def),
		log:  d.Logger,
	}
	a.log.Info(ctx, "collections loaded",
		"characters", len(characters.Snapshot()),
		"fanart", len(fanArt.Snapshot()),
		"threads", len(forum.Snapshot()),
		"blog", len(blog.Snapshot()))
	return a
}

func (a *App) ListCharacters() []models.Character {
	return a.characters.List()
}

func (a *App) AddCharacter(ctx context.Context, draft models.CharacterDraft) (services.Change[models.Character], error) {
	return a.characters.Add(ctx, draft)
}

func (a *App) GetCharacter(id string) (models.Character, error) {
	return a.characters.Get(id)
}

func (a *App) ListFanArt() []models.FanArtItem {
	return a.fanArt.List()
}

// AddFanArt starts an upload; the gallery changes only when it completes.
func (a *App) AddFanArt(ctx context.Context, up ingest.Upload) *services.PendingUpload {
	return a.fanArt.Upload(ctx, up)
}

func (a *App) LikeFanArt(ctx context.Context, id string) (services.Change[models.FanArtItem], error) {
	return a.fanArt.Like(ctx, id)
}

func (a *App) ListThreads() []models.ForumThread {
	return a.forum.List()
}

func (a *App) GetThread(id string) (models.ForumThread, error) {
	return a.forum.Get(id)
}

func (a *App) CreateThread(ctx context.Context, title string) (services.Change[models.ForumThread], error) {
	return a.forum.Create(ctx, title)
}

func (a *App) ReplyToThread(ctx context.Context, id, body, author string) (services.Change[models.ForumThread], error) {
	return a.forum.Reply(ctx, id, body, author)
}

func (a *App) ListBlogPosts() []models.BlogPost {
	return a.blog.List()
}

func (a *App) PublishBlogPost(ctx context.Context, title, body string) (services.Change[models.BlogPost], error) {
	return a.blog.Publish(ctx, title, body)
}

func (a *App) GetQuizDefinition() quiz.Definition {
	return a.quiz.Definition()
}

// ChooseQuizAnswer records one answer of the in-progress quiz.
func (a *App) ChooseQuizAnswer(question, option int) error {
	return a.quiz.Choose(question, option)
}

// QuizAnswers returns the in-progress answers.
func (a *App) QuizAnswers() quiz.Answers {
	return a.quiz.Answers()
}

// SubmitQuizAnswers scores answers. Errors match common.ErrIncomplete,
// common.ErrOutOfRange or common.ErrUnmatched; with ErrUnmatched the Result
// still carries the total.
func (a *App) SubmitQuizAnswers(answers quiz.Answers) (quiz.Result, error) {
	return a.quiz.SubmitAnswers(answers)
}

// ResetQuiz discards the in-progress answers and result.
func (a *App) ResetQuiz() {
	a.quiz.Reset()
}

// SubmitQuiz scores the in-progress answers.
func (a *App) SubmitQuiz() (quiz.Result, error) {
	return a.quiz.Submit()
}

// QuizResult returns the last result, if any.
func (a *App) QuizResult() (quiz.Result, bool) {
	return a.quiz.Result()
}
