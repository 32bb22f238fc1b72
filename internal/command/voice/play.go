package voice

import (
	"errors"
	"fmt"
	"strings"

	"bruhbot/internal/command"
)

// PlayCommand queues a YouTube video for playback, joining the
// invoker's voice channel first if needed.
type PlayCommand struct {
	Deps *Deps
}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Aliases() []string   { return []string{"yt", "youtube", "music"} }
func (c *PlayCommand) Description() string { return "Play a YouTube link or search result" }
func (c *PlayCommand) Category() string    { return "🔊 Voice" }
func (c *PlayCommand) OwnerOnly() bool     { return false }

func (c *PlayCommand) Run(ctx *command.Context) error {
	input := strings.TrimSpace(strings.Join(ctx.Args, " "))
	if input == "" {
		return errors.New("give me a link or something to search for")
	}

	req, err := c.Deps.requester(ctx)
	if err != nil {
		return err
	}

	clip, err := c.Deps.YouTube.Find(input)
	if err != nil {
		return fmt.Errorf("finding %q: %w", input, err)
	}

	return c.Deps.Engine.RequestPlay(ctx.GuildID(), clip, req)
}
