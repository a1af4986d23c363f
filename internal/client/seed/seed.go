// Package seed holds the sample content shown before the user has created
// anything, and the built-in quiz.
package seed

import (
	"time"

	"github.com/dmitrijs2005/realverse/internal/client/identity"
	"github.com/dmitrijs2005/realverse/internal/client/models"
	"github.com/dmitrijs2005/realverse/internal/client/quiz"
)

// Characters returns the sample character profiles.
func Characters() []models.Character {
	return []models.Character{
		{
			ID:    "c1",
			Name:  "Mika Kurosawa",
			Anime: "Starfall Academy",
			Role:  "Energetic protagonist",
			Tags:  []string{"energetic", "student"},
			Image: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=1",
			Bio:   "Mika grew up on the docks... She discovers latent powers and fights for her friends.",
		},
		{
			ID:    "c2",
			Name:  "Hayato Inoue",
			Anime: "Neon Borough",
			Role:  "Quiet tech genius",
			Tags:  []string{"tech", "quiet"},
			Image: "https://images.unsplash.com/photo-1607746882042-944635dfe10e?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=2",
			Bio:   "Hayato rebuilt his own AI companion after a lab accident.",
		},
		{
			ID:    "c3",
			Name:  "Sora Amano",
			Anime: "Winds of Kyoto",
			Role:  "Kind healer",
			Tags:  []string{"healer", "calm"},
			Image: "https://images.unsplash.com/photo-1527980965255-d3b416303d12?q=80&w=800&auto=format&fit=crop&ixlib=rb-4.0.3&s=3",
			Bio:   "Sora travels the countryside to help communities in need.",
		},
	}
}

// FanArt returns the (empty) sample gallery.
func FanArt() []models.FanArtItem {
	return []models.FanArtItem{}
}

// Threads returns the sample forum with one opening thread. Ids and
// timestamps are fresh on every call.
func Threads(ids identity.IDGenerator, now time.Time) []models.ForumThread {
	ms := now.UnixMilli()
	return []models.ForumThread{
		{
			ID:    ids.NewID(),
			Title: "Which character would survive longest in our world?",
			Posts: []models.Post{
				{ID: ids.NewID(), Author: "User1", Body: "I think a healer like Sora would do well.", Created: ms},
			},
			Created: ms,
		},
	}
}

// BlogPosts returns the sample blog. Ids and timestamps are fresh on every call.
func BlogPosts(ids identity.IDGenerator, now time.Time) []models.BlogPost {
	return []models.BlogPost{
		{ID: ids.NewID(), Title: "If Goku went to university", Body: "A thought experiment...", Created: now.UnixMilli()},
	}
}

// Quiz returns the built-in personality quiz.
func Quiz() quiz.Definition {
	return quiz.Definition{
		ID:    "q1",
		Title: "Which anime character would be your best friend in real life?",
		Questions: []quiz.Question{
			{
				Prompt:  "On a weekend, you prefer to:",
				Options: []string{"Explore a city", "Work on a project", "Relax at home", "Train outdoors"},
				Scores:  []int{0, 1, 2, 3},
			},
			{
				Prompt:  "Your ideal friend is:",
				Options: []string{"Outgoing", "Quiet and reliable", "Funny", "Protective"},
				Scores:  []int{3, 2, 1, 0},
			},
		},
		Results: []quiz.ResultBand{
			{Range: [2]int{0, 1}, Text: "You match Sora — calm and thoughtful."},
			{Range: [2]int{2, 3}, Text: "You match Hayato — dependable and clever."},
			{Range: [2]int{4, 6}, Text: "You match Mika — energetic and fun!"},
		},
	}
}
