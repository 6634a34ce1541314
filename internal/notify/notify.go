package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/devextract/internal/session"
)

// Log sends notifications to a zerolog logger: destructive ones at warn
// level, the rest at info.
type Log struct {
	Logger zerolog.Logger
}

func (l Log) Notify(_ context.Context, n session.Notification) {
	ev := l.Logger.Info()
	if n.Variant == session.Destructive {
		ev = l.Logger.Warn()
	}
	ev.Str("description", n.Description).Msg(n.Title)
}

// Console prints one line per notification.
type Console struct {
	mu sync.Mutex
	W  io.Writer
}

func (c *Console) Notify(_ context.Context, n session.Notification) {
	prefix := ""
	if n.Variant == session.Destructive {
		prefix = "! "
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if n.Description == "" {
		fmt.Fprintf(c.W, "%s%s\n", prefix, n.Title)
		return
	}
	fmt.Fprintf(c.W, "%s%s: %s\n", prefix, n.Title, n.Description)
}
