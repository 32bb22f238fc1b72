package command

import (
	"github.com/bwmarrin/discordgo"

	"bruhbot/internal/storage"
)

// Command is one prefix-invoked bot command.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Category() string
	// OwnerOnly commands are refused for everyone but the configured owner.
	OwnerOnly() bool
	Run(ctx *Context) error
}

// Context carries everything a command invocation needs.
type Context struct {
	Session *discordgo.Session
	Message *discordgo.MessageCreate
	// Args are the whitespace-split tokens after the command name.
	Args    []string
	Storage *storage.Storage
	// Prefix is the configured command prefix, for usage hints.
	Prefix string
}

func (c *Context) GuildID() string {
	return c.Message.GuildID
}

func (c *Context) AuthorID() string {
	return c.Message.Author.ID
}
