package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hyperifyio/devextract/internal/notify"
	"github.com/hyperifyio/devextract/internal/session"
)

const interactiveHelp = "Commands: input <text> | paste | extract | show | count | copy | clear | help | quit"

// Interactive runs a line-oriented session on in and out. Each command maps
// to one action of the session controller.
func (a *App) Interactive(ctx context.Context, in io.Reader, out io.Writer) error {
	ctrl := a.controller(&notify.Console{W: out})
	var state session.State

	fmt.Fprintln(out, "devextract: extract Devanagari text")
	fmt.Fprintln(out, interactiveHelp)
	fmt.Fprintln(out, "Tip: 'paste' reads lines until a line with a single '.'")

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		cmd, arg := splitCmd(line)

		switch cmd {
		case "quit", "exit":
			return nil

		case "help":
			fmt.Fprintln(out, interactiveHelp)

		case "input":
			if arg == "" {
				fmt.Fprintln(out, "usage: input <text>")
				continue
			}
			state = ctrl.SetInput(state, arg)

		case "paste":
			fmt.Fprintln(out, "(paste, end with '.')")
			var lines []string
			for sc.Scan() {
				if sc.Text() == "." {
					break
				}
				lines = append(lines, sc.Text())
			}
			state = ctrl.SetInput(state, strings.Join(lines, "\n"))

		case "extract":
			next, err := ctrl.Extract(ctx, state)
			if errors.Is(err, session.ErrBlankInput) {
				fmt.Fprintln(out, "nothing to extract: input is empty")
				continue
			}
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			state = next
			if state.Output != "" {
				fmt.Fprintln(out, state.Output)
				fmt.Fprintf(out, "(%d characters)\n", ctrl.CharCount(state))
			}

		case "show":
			fmt.Fprintln(out, "input:", preview(state.Input, 80))
			if state.Output == "" {
				fmt.Fprintln(out, "output: (none)")
			} else {
				fmt.Fprintln(out, "output:", state.Output)
			}
			if ctrl.Copied(state, time.Now()) {
				fmt.Fprintln(out, "copied")
			}

		case "count":
			fmt.Fprintf(out, "%d characters\n", ctrl.CharCount(state))

		case "copy":
			next, err := ctrl.Copy(ctx, state)
			if errors.Is(err, session.ErrNothingToCopy) {
				fmt.Fprintln(out, "nothing to copy: extract first")
				continue
			}
			if err != nil {
				fmt.Fprintln(out, "error:", err)
				continue
			}
			state = next

		case "clear":
			state = ctrl.Clear(state)
			fmt.Fprintln(out, "cleared")

		default:
			fmt.Fprintln(out, "unknown command:", cmd)
			fmt.Fprintln(out, interactiveHelp)
		}
	}
	return sc.Err()
}

func splitCmd(s string) (cmd, arg string) {
	parts := strings.Fields(s)
	cmd = strings.ToLower(parts[0])
	if len(parts) > 1 {
		arg = strings.TrimSpace(s[len(parts[0]):])
	}
	return cmd, arg
}

func preview(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
