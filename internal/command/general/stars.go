package general

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"bruhbot/internal/command"
)

// StarCommand awards a gold star to a mentioned user and reports their
// running total. Stars persist per guild.
type StarCommand struct{}

func (c *StarCommand) Name() string        { return "star" }
func (c *StarCommand) Aliases() []string   { return []string{"goldstar"} }
func (c *StarCommand) Description() string { return "Award someone a gold star" }
func (c *StarCommand) Category() string    { return "🃏 Fun" }
func (c *StarCommand) OwnerOnly() bool     { return false }

func (c *StarCommand) Run(ctx *command.Context) error {
	if len(ctx.Message.Mentions) == 0 {
		return errors.New("mention someone to give them a star")
	}

	target := ctx.Message.Mentions[0]
	total, err := ctx.Storage.AwardGoldStar(ctx.GuildID(), target.ID)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("⭐ %s earned a gold star! They now have %s.", target.Mention(), starCount(total))
	_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, msg)
	return err
}

// StarsCommand reports gold star totals, for one user or the whole guild.
type StarsCommand struct{}

func (c *StarsCommand) Name() string        { return "stars" }
func (c *StarsCommand) Aliases() []string   { return []string{"goldstars"} }
func (c *StarsCommand) Description() string { return "Show gold star totals" }
func (c *StarsCommand) Category() string    { return "🃏 Fun" }
func (c *StarsCommand) OwnerOnly() bool     { return false }

func (c *StarsCommand) Run(ctx *command.Context) error {
	if len(ctx.Message.Mentions) > 0 {
		target := ctx.Message.Mentions[0]
		total, err := ctx.Storage.GoldStars(ctx.GuildID(), target.ID)
		if err != nil {
			return err
		}
		msg := fmt.Sprintf("%s has %s.", target.Mention(), starCount(total))
		_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, msg)
		return err
	}

	all, err := ctx.Storage.AllGoldStars(ctx.GuildID())
	if err != nil {
		return err
	}
	if len(all) == 0 {
		_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, "Nobody here has earned a gold star yet.")
		return err
	}

	_, err = ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, formatStarBoard(all))
	return err
}

func starCount(n int) string {
	if n == 1 {
		return "1 gold star"
	}
	return fmt.Sprintf("%d gold stars", n)
}

type starRow struct {
	userID string
	count  int
}

func formatStarBoard(all map[string]int) string {
	rows := make([]starRow, 0, len(all))
	for userID, count := range all {
		rows = append(rows, starRow{userID, count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].userID < rows[j].userID
	})

	var b strings.Builder
	b.WriteString("**Gold Star Board**\n")
	for i, row := range rows {
		fmt.Fprintf(&b, "%d. %s with %s\n", i+1, mention(row.userID), starCount(row.count))
	}
	return b.String()
}

func mention(userID string) string {
	return (&discordgo.User{ID: userID}).Mention()
}
