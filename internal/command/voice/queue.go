package voice

import (
	"fmt"
	"strings"
	"time"

	embed "github.com/clinet/discordgo-embed"

	"bruhbot/internal/command"
	"bruhbot/internal/playback"
)

const embedColor = 0x9B59B6

// QueueCommand shows the play queue, and handles the `clear` and
// `remove` subcommands.
type QueueCommand struct {
	Deps *Deps
}

func (c *QueueCommand) Name() string      { return "queue" }
func (c *QueueCommand) Aliases() []string { return []string{"q"} }
func (c *QueueCommand) Description() string {
	return "Show the play queue (`clear` to empty it, `remove <position>` to drop one clip)"
}
func (c *QueueCommand) Category() string { return "🔊 Voice" }
func (c *QueueCommand) OwnerOnly() bool  { return false }

func (c *QueueCommand) Run(ctx *command.Context) error {
	if len(ctx.Args) == 0 {
		return c.show(ctx)
	}

	switch ctx.Args[0] {
	case "clear":
		if err := c.Deps.sameChannel(ctx); err != nil {
			return err
		}
		if err := c.Deps.Engine.ClearQueue(ctx.GuildID()); err != nil {
			return err
		}
		_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, "🧹 Queue cleared. The current clip keeps playing.")
		return err
	case "remove":
		if err := c.Deps.sameChannel(ctx); err != nil {
			return err
		}
		target := "first"
		if len(ctx.Args) > 1 {
			target = ctx.Args[1]
		}
		removed, err := c.Deps.Engine.Remove(ctx.GuildID(), target)
		if err != nil {
			return err
		}
		_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID,
			fmt.Sprintf("🗑️ Removed **%s** from the queue.", removed.Title))
		return err
	default:
		return c.show(ctx)
	}
}

func (c *QueueCommand) show(ctx *command.Context) error {
	queue := c.Deps.Engine.ListQueue(ctx.GuildID())
	if len(queue) == 0 {
		_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, "The queue is empty.")
		return err
	}

	embedMsg := embed.NewEmbed().
		SetColor(embedColor).
		SetTitle("Play Queue").
		SetDescription(formatQueue(queue))
	_, err := ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embedMsg.MessageEmbed)
	return err
}

func formatQueue(queue []playback.Clip) string {
	var b strings.Builder
	for i, clip := range queue {
		marker := fmt.Sprintf("%d.", i+1)
		if i == 0 {
			marker = "▶️"
		}
		fmt.Fprintf(&b, "%s **%s**", marker, clip.Title)
		if clip.Duration > 0 {
			fmt.Fprintf(&b, " `%s`", formatDuration(clip.Duration))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
