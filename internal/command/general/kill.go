package general

import "bruhbot/internal/command"

// KillCommand disconnects the bot from every voice channel and shuts the
// process down.
type KillCommand struct {
	// KillAll tears down all voice connections and queues.
	KillAll func()
	// Shutdown asks the process to exit once teardown is done.
	Shutdown func()
}

func (c *KillCommand) Name() string        { return "kill" }
func (c *KillCommand) Aliases() []string   { return []string{"killall"} }
func (c *KillCommand) Description() string { return "Disconnect from every voice channel" }
func (c *KillCommand) Category() string    { return "🛠️ Maintenance" }
func (c *KillCommand) OwnerOnly() bool     { return true }

func (c *KillCommand) Run(ctx *command.Context) error {
	c.KillAll()
	if _, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, "💀 All voice connections dropped. Goodbye."); err != nil {
		return err
	}
	c.Shutdown()
	return nil
}
