package voice

import (
	"errors"

	"bruhbot/internal/command"
)

// LoopCommand toggles replaying the current clip instead of advancing.
type LoopCommand struct {
	Deps *Deps
}

func (c *LoopCommand) Name() string        { return "loop" }
func (c *LoopCommand) Aliases() []string   { return []string{"repeat"} }
func (c *LoopCommand) Description() string { return "Toggle looping the current clip (`on`/`off` to set)" }
func (c *LoopCommand) Category() string    { return "🔊 Voice" }
func (c *LoopCommand) OwnerOnly() bool     { return false }

func (c *LoopCommand) Run(ctx *command.Context) error {
	if err := c.Deps.sameChannel(ctx); err != nil {
		return err
	}

	guildID := ctx.GuildID()
	var enabled bool
	switch {
	case len(ctx.Args) == 0:
		enabled = !c.Deps.Engine.LoopEnabled(guildID)
	case ctx.Args[0] == "on":
		enabled = true
	case ctx.Args[0] == "off":
		enabled = false
	default:
		return errors.New("loop takes `on`, `off`, or nothing")
	}
	c.Deps.Engine.SetLoop(guildID, enabled)

	msg := "🔁 Looping the current clip."
	if !enabled {
		msg = "➡️ Loop off, the queue will advance."
	}
	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, msg)
	return err
}
