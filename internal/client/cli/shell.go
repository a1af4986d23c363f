package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/realverse/internal/client/app"
	"github.com/dmitrijs2005/realverse/internal/common"
	"github.com/dmitrijs2005/realverse/internal/logging"
)

// Shell binds the REPL to an app.App.
type Shell struct {
	app    *app.App
	reader *bufio.Reader
	log    logging.Logger

	mu  sync.Mutex
	out io.Writer

	uploads sync.WaitGroup
}

// NewShell reads commands from in and writes everything it renders to out.
func NewShell(a *app.App, in io.Reader, out io.Writer, log logging.Logger) *Shell {
	return &Shell{app: a, reader: bufio.NewReader(in), out: out, log: log}
}

// Run processes commands until the input ends or the user quits, then waits
// for uploads still in flight.
func (s *Shell) Run(ctx context.Context) {
	s.printf("Welcome to realverse (type 'help' for commands)\n")
	runREPL(ctx, s, s.reader)
	s.uploads.Wait()
}

func (s *Shell) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) ask(prompt string) (string, error) {
	return GetSimpleText(s.reader, prompt, s.out)
}

func (s *Shell) askMultiline(prompt string) (string, error) {
	return GetMultiline(s.reader, prompt, s.out)
}

// saved reports the outcome of a mutation. A failed persist is not fatal:
// the change is live for this session and only the user is told.
func (s *Shell) saved(ctx context.Context, what, id string, err error) error {
	if errors.Is(err, common.ErrPersistFailed) {
		s.log.Warn(ctx, "change kept in memory only", "item", what, "id", id, "error", err)
		s.printf("%s %s changed for this session only; saving failed and it will be lost on exit\n", what, id)
		return nil
	}
	if err != nil {
		return err
	}
	s.printf("%s %s saved\n", what, id)
	return nil
}
