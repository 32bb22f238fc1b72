package command

import (
	"errors"
	"log"
	"sync"

	"golang.org/x/time/rate"
)

// Middleware wraps a command with a cross-cutting check.
type Middleware func(Command) Command

var ErrGuildOnly = errors.New("that command only works inside a server")

// ErrRateLimited is returned when a user fires commands faster than allowed.
var ErrRateLimited = errors.New("slow down")

type wrappedCommand struct {
	Command
	wrap func(ctx *Context) error
}

func (w *wrappedCommand) Run(ctx *Context) error {
	return w.wrap(ctx)
}

// WithGuildOnly rejects invocations from direct messages.
func WithGuildOnly() Middleware {
	return func(next Command) Command {
		return &wrappedCommand{Command: next, wrap: func(ctx *Context) error {
			if ctx.GuildID() == "" {
				return ErrGuildOnly
			}
			return next.Run(ctx)
		}}
	}
}

// WithRateLimit throttles each user independently.
func WithRateLimit(limit rate.Limit, burst int) Middleware {
	var mu sync.Mutex
	limiters := map[string]*rate.Limiter{}

	return func(next Command) Command {
		return &wrappedCommand{Command: next, wrap: func(ctx *Context) error {
			mu.Lock()
			lim, ok := limiters[ctx.AuthorID()]
			if !ok {
				lim = rate.NewLimiter(limit, burst)
				limiters[ctx.AuthorID()] = lim
			}
			mu.Unlock()

			if !lim.Allow() {
				return ErrRateLimited
			}
			return next.Run(ctx)
		}}
	}
}

// WithCommandLogger logs every invocation.
func WithCommandLogger() Middleware {
	return func(next Command) Command {
		return &wrappedCommand{Command: next, wrap: func(ctx *Context) error {
			log.Printf("[INFO] [%s] %s invoked %q args=%v",
				ctx.GuildID(), ctx.Message.Author.Username, next.Name(), ctx.Args)
			return next.Run(ctx)
		}}
	}
}
