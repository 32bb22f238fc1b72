package general

import (
	"fmt"
	"sort"
	"strings"

	embed "github.com/clinet/discordgo-embed"

	"bruhbot/internal/command"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Aliases() []string   { return []string{"commands"} }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }
func (c *HelpCommand) OwnerOnly() bool     { return false }

var categoryWeights = map[string]int{
	"🕯️ Information": 0,
	"🔊 Voice":        10,
	"🃏 Fun":          20,
	"🛠️ Maintenance": 30,
}

const embedColor = 0x9B59B6

func (c *HelpCommand) Run(ctx *command.Context) error {
	embedMsg := embed.NewEmbed().
		SetColor(embedColor).
		SetTitle("Bruh Bot Help").
		SetDescription(buildHelpByCategory(ctx.Prefix))
	_, err := ctx.Session.ChannelMessageSendEmbed(ctx.Message.ChannelID, embedMsg.MessageEmbed)
	return err
}

func buildHelpByCategory(prefix string) string {
	categoryMap := make(map[string][]command.Command)
	for _, cmd := range command.All() {
		if cmd.OwnerOnly() {
			continue
		}
		categoryMap[cmd.Category()] = append(categoryMap[cmd.Category()], cmd)
	}

	var cats []string
	for cat := range categoryMap {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool {
		if categoryWeights[cats[i]] != categoryWeights[cats[j]] {
			return categoryWeights[cats[i]] < categoryWeights[cats[j]]
		}
		return cats[i] < cats[j]
	})

	var sb strings.Builder
	for _, cat := range cats {
		sb.WriteString(fmt.Sprintf("**%s**\n", cat))
		cmds := categoryMap[cat]
		sort.Slice(cmds, func(i, j int) bool {
			return cmds[i].Name() < cmds[j].Name()
		})
		for _, cmd := range cmds {
			sb.WriteString(fmt.Sprintf("`%s%s` - %s\n", prefix, cmd.Name(), cmd.Description()))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
