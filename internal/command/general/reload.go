package general

import "bruhbot/internal/command"

// ReloadCommand re-registers the command set while carrying the voice
// queues across untouched.
type ReloadCommand struct {
	Reload func() error
}

func (c *ReloadCommand) Name() string        { return "reload" }
func (c *ReloadCommand) Aliases() []string   { return nil }
func (c *ReloadCommand) Description() string { return "Reload the command set" }
func (c *ReloadCommand) Category() string    { return "🛠️ Maintenance" }
func (c *ReloadCommand) OwnerOnly() bool     { return true }

func (c *ReloadCommand) Run(ctx *command.Context) error {
	if err := c.Reload(); err != nil {
		return err
	}
	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, "🔄 Commands reloaded. Queues are intact.")
	return err
}
