package general

import (
	"errors"
	"fmt"
	"strings"

	"bruhbot/internal/command"
)

var errNoEmojisFound = errors.New("could not find any of those emojis")

// EmojiCommand lets users post nitro-gated server emojis by name. Finding
// at least one of the requested emojis counts as success.
type EmojiCommand struct{}

func (c *EmojiCommand) Name() string        { return "emoji" }
func (c *EmojiCommand) Aliases() []string   { return nil }
func (c *EmojiCommand) Description() string { return "Posts server emojis by name" }
func (c *EmojiCommand) Category() string    { return "🃏 Fun" }
func (c *EmojiCommand) OwnerOnly() bool     { return false }

func (c *EmojiCommand) Run(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return fmt.Errorf("usage: emoji <name> [name ...]")
	}

	wanted := map[string]bool{}
	for _, arg := range ctx.Args {
		wanted[strings.ToLower(arg)] = true
	}

	emojis, err := ctx.Session.GuildEmojis(ctx.GuildID())
	if err != nil {
		return fmt.Errorf("fetch guild emojis: %w", err)
	}

	var found []string
	for _, emoji := range emojis {
		if wanted[strings.ToLower(emoji.Name)] {
			found = append(found, emoji.MessageFormat())
		}
	}
	if len(found) == 0 {
		return errNoEmojisFound
	}

	_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, strings.Join(found, " "))
	return err
}
