// Package quiz scores personality quizzes.
//
// Each answer picks an option of its question; the option's score is looked
// up directly in Question.Scores, which must be aligned with Options. The
// total is resolved to the first result band, in declaration order, whose
// inclusive range contains it. Overlapping bands are therefore decided by
// order, not by the tightest fit.
package quiz

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/realverse/internal/common"
)

// Unanswered marks a question without a chosen option.
const Unanswered = -1

// Definition is a static quiz.
type Definition struct {
	ID        string       `json:"id" yaml:"id"`
	Title     string       `json:"title" yaml:"title"`
	Questions []Question   `json:"questions" yaml:"questions"`
	Results   []ResultBand `json:"results" yaml:"results"`
}

// Question offers options, each worth the score at the same index.
type Question struct {
	Prompt  string   `json:"q" yaml:"q"`
	Options []string `json:"options" yaml:"options"`
	Scores  []int    `json:"scores" yaml:"scores"`
}

// ResultBand maps the inclusive score range [Range[0], Range[1]] to Text.
type ResultBand struct {
	Range [2]int `json:"range" yaml:"range"`
	Text  string `json:"text" yaml:"text"`
}

// Contains reports whether total lies within the band, bounds included.
func (b ResultBand) Contains(total int) bool {
	return total >= b.Range[0] && total <= b.Range[1]
}

// Answers holds one option index per question, or Unanswered.
type Answers []int

// NewAnswers returns n unanswered positions.
func NewAnswers(n int) Answers {
	a := make(Answers, n)
	for i := range a {
		a[i] = Unanswered
	}
	return a
}

// Result is a scored quiz.
type Result struct {
	Total int    `json:"total"`
	Text  string `json:"text"`
}

// IncompleteError lists the questions (0-based) that have no answer.
type IncompleteError struct {
	Missing []int
}

func (e *IncompleteError) Error() string {
	parts := make([]string, len(e.Missing))
	for i, q := range e.Missing {
		parts[i] = fmt.Sprint(q)
	}
	return fmt.Sprintf("%s: unanswered questions [%s]", common.ErrIncomplete, strings.Join(parts, " "))
}

func (e *IncompleteError) Is(target error) bool { return target == common.ErrIncomplete }

// OutOfRangeError reports an answer that does not select an option.
type OutOfRangeError struct {
	Question int
	Index    int
	Options  int
}

func (e *OutOfRangeError) Error() string {
	if e.Options < 0 {
		return fmt.Sprintf("%s: answer %d given for nonexistent question", common.ErrOutOfRange, e.Question)
	}
	return fmt.Sprintf("%s: question %d has %d options, got index %d", common.ErrOutOfRange, e.Question, e.Options, e.Index)
}

func (e *OutOfRangeError) Is(target error) bool { return target == common.ErrOutOfRange }

// UnmatchedError carries the total that no band contains.
type UnmatchedError struct {
	Total int
}

func (e *UnmatchedError) Error() string {
	return fmt.Sprintf("%s: total %d", common.ErrUnmatched, e.Total)
}

func (e *UnmatchedError) Is(target error) bool { return target == common.ErrUnmatched }

// Validate checks that every question's scores line up with its options and
// every band has low <= high.
func (d Definition) Validate() error {
	if len(d.Questions) == 0 {
		return fmt.Errorf("%w: no questions", common.ErrInvalidDefinition)
	}
	for i, q := range d.Questions {
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", common.ErrInvalidDefinition, i)
		}
		if len(q.Options) != len(q.Scores) {
			return fmt.Errorf("%w: question %d has %d options and %d scores",
				common.ErrInvalidDefinition, i, len(q.Options), len(q.Scores))
		}
	}
	for i, b := range d.Results {
		if b.Range[0] > b.Range[1] {
			return fmt.Errorf("%w: result %d range [%d,%d] is inverted",
				common.ErrInvalidDefinition, i, b.Range[0], b.Range[1])
		}
	}
	return nil
}

// Score totals the answers and resolves the result band.
//
// Errors:
//   - *IncompleteError when any question is unanswered (including positions
//     missing at the end of answers). No partial score is computed.
//   - *OutOfRangeError when an index does not select an option, or there are
//     more answers than questions.
//   - *UnmatchedError when no band contains the total; the returned Result
//     still carries the total and an empty Text.
func Score(def Definition, answers Answers) (Result, error) {
	if len(answers) > len(def.Questions) {
		return Result{}, &OutOfRangeError{Question: len(def.Questions), Index: answers[len(def.Questions)], Options: -1}
	}

	var missing []int
	for i := range def.Questions {
		if i >= len(answers) || answers[i] == Unanswered {
			missing = append(missing, i)
		}
	}
	if len(missing) > 0 {
		return Result{}, &IncompleteError{Missing: missing}
	}

	total := 0
	for i, q := range def.Questions {
		a := answers[i]
		if a < 0 || a >= len(q.Options) || a >= len(q.Scores) {
			return Result{}, &OutOfRangeError{Question: i, Index: a, Options: len(q.Options)}
		}
		total += q.Scores[a]
	}

	for _, band := range def.Results {
		if band.Contains(total) {
			return Result{Total: total, Text: band.Text}, nil
		}
	}
	return Result{Total: total}, &UnmatchedError{Total: total}
}
