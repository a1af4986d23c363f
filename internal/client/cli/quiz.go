package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/realverse/internal/client/quiz"
	"github.com/dmitrijs2005/realverse/internal/common"
)

func (s *Shell) Quiz(ctx context.Context) error {
	def := s.app.GetQuizDefinition()
	answers := s.app.QuizAnswers()

	s.printf("%s\n", def.Title)
	for qi, q := range def.Questions {
		s.printf("\n%d. %s\n", qi+1, q.Prompt)
		for oi, opt := range q.Options {
			mark := " "
			if qi < len(answers) && answers[qi] == oi {
				mark = "*"
			}
			s.printf("  %s %d) %s\n", mark, oi+1, opt)
		}
	}
	if res, ok := s.app.QuizResult(); ok {
		s.printf("\nLast result: %s\n", describe(res))
	}
	return nil
}

// Answer takes 1-based question and option numbers, as shown by Quiz.
func (s *Shell) Answer(ctx context.Context, question, option string) error {
	q, err := strconv.Atoi(question)
	if err != nil {
		return fmt.Errorf("question must be a number: %q", question)
	}
	o, err := strconv.Atoi(option)
	if err != nil {
		return fmt.Errorf("option must be a number: %q", option)
	}
	return s.app.ChooseQuizAnswer(q-1, o-1)
}

func (s *Shell) Submit(ctx context.Context) error {
	res, err := s.app.SubmitQuiz()

	var incomplete *quiz.IncompleteError
	switch {
	case errors.As(err, &incomplete):
		s.printf("Please answer every question first (missing: %s)\n", oneBased(incomplete.Missing))
		return nil
	case errors.Is(err, common.ErrUnmatched):
		s.printf("%s\n", describe(res))
		return nil
	case err != nil:
		return err
	}
	s.printf("%s\n", describe(res))
	return nil
}

func (s *Shell) Reset(ctx context.Context) error {
	s.app.ResetQuiz()
	s.printf("Quiz reset\n")
	return nil
}

func describe(res quiz.Result) string {
	if res.Text == "" {
		return fmt.Sprintf("Score %d, no matching result", res.Total)
	}
	return fmt.Sprintf("%s (score %d)", res.Text, res.Total)
}

func oneBased(idx []int) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v + 1)
	}
	return strings.Join(parts, ", ")
}
