package voice

import "bruhbot/internal/command"

// StopCommand drops the queue and leaves the voice channel.
type StopCommand struct {
	Deps *Deps
}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Aliases() []string   { return []string{"leave", "fuckoff"} }
func (c *StopCommand) Description() string { return "Stop playing and leave the voice channel" }
func (c *StopCommand) Category() string    { return "🔊 Voice" }
func (c *StopCommand) OwnerOnly() bool     { return false }

func (c *StopCommand) Run(ctx *command.Context) error {
	// The engine treats stop-while-idle as a no-op; refusing here keeps
	// the reply honest about the bot not being connected.
	if err := c.Deps.sameChannel(ctx); err != nil {
		return err
	}
	return c.Deps.Engine.Stop(ctx.GuildID())
}
