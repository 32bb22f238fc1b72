package voice

import "bruhbot/internal/command"

// SkipCommand cuts the current clip short and moves to the next one.
type SkipCommand struct {
	Deps *Deps
}

func (c *SkipCommand) Name() string        { return "skip" }
func (c *SkipCommand) Aliases() []string   { return []string{"next"} }
func (c *SkipCommand) Description() string { return "Skip the clip that is playing" }
func (c *SkipCommand) Category() string    { return "🔊 Voice" }
func (c *SkipCommand) OwnerOnly() bool     { return false }

func (c *SkipCommand) Run(ctx *command.Context) error {
	if err := c.Deps.sameChannel(ctx); err != nil {
		return err
	}
	return c.Deps.Engine.Skip(ctx.GuildID())
}
