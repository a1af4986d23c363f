package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// Shell satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Characters(ctx context.Context) error
	Character(ctx context.Context, id string) error
	AddCharacter(ctx context.Context) error
	FanArt(ctx context.Context) error
	Upload(ctx context.Context, path string) error
	Like(ctx context.Context, id string) error
	Threads(ctx context.Context) error
	Thread(ctx context.Context, id string) error
	NewThread(ctx context.Context) error
	Reply(ctx context.Context, id string) error
	Blog(ctx context.Context) error
	Publish(ctx context.Context) error
	Quiz(ctx context.Context) error
	Answer(ctx context.Context, question, option string) error
	Submit(ctx context.Context) error
	Reset(ctx context.Context) error
}

const helpText = `Available commands:
  characters           list character profiles
  character <id>       show one profile
  addchar              create a character profile
  fanart               list the fan art gallery
  upload <path>        upload an image to the gallery
  like <id>            like a fan art item
  threads              list forum threads
  thread <id>          show a thread with its posts
  newthread            start a thread
  reply <id>           reply to a thread
  blog                 list blog posts
  publish              publish a blog post
  quiz                 show the quiz and your answers
  answer <q> <opt>     answer question q with option opt (both from 1)
  submit               score your answers
  reset                start the quiz over
  exit | quit          leave the program`

// runREPL starts a read–eval–print loop over reader.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Commands that prompt for more input read from the same
// reader. Handler errors are reported and the loop carries on. The loop exits
// at end of input or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("realverse> ")
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			printlnFn(helpText)

		case "characters":
			cmdErr = a.Characters(ctx)

		case "character":
			if len(args) == 0 {
				printlnFn("Usage: character <id>")
				continue
			}
			cmdErr = a.Character(ctx, args[0])

		case "addchar":
			cmdErr = a.AddCharacter(ctx)

		case "fanart":
			cmdErr = a.FanArt(ctx)

		case "upload":
			if len(args) == 0 {
				printlnFn("Usage: upload <path>")
				continue
			}
			cmdErr = a.Upload(ctx, strings.Join(args, " "))

		case "like":
			if len(args) == 0 {
				printlnFn("Usage: like <id>")
				continue
			}
			cmdErr = a.Like(ctx, args[0])

		case "threads":
			cmdErr = a.Threads(ctx)

		case "thread":
			if len(args) == 0 {
				printlnFn("Usage: thread <id>")
				continue
			}
			cmdErr = a.Thread(ctx, args[0])

		case "newthread":
			cmdErr = a.NewThread(ctx)

		case "reply":
			if len(args) == 0 {
				printlnFn("Usage: reply <id>")
				continue
			}
			cmdErr = a.Reply(ctx, args[0])

		case "blog":
			cmdErr = a.Blog(ctx)

		case "publish":
			cmdErr = a.Publish(ctx)

		case "quiz":
			cmdErr = a.Quiz(ctx)

		case "answer":
			if len(args) < 2 {
				printlnFn("Usage: answer <question> <option>")
				continue
			}
			cmdErr = a.Answer(ctx, args[0], args[1])

		case "submit":
			cmdErr = a.Submit(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}
