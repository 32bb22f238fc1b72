package general

import (
	"bruhbot/internal/command"
)

const bruhPasta = ":warning:BRUH:warning:...:warning:BRUH:warning:...:warning:BRUH:warning:... \n\n" +
	"The :police_officer: Department of :house: Homeland :statue_of_liberty: Security :oncoming_police_car: " +
	"has issued a :b:ruh Moment :warning: warning :construction: for the following districts: " +
	"Ligma, Sugma, :b:ofa, and Sugondese. \n\n" +
	"Numerous instances of :b:ruh moments :b:eing triggered by :eyes: cringe:grimacing: normies :toilet: " +
	"have :alarm_clock: recently :clock2: occurred across the :earth_americas: continental :flag_us:United States:flag_us:. " +
	"These individuals are :b:elieved to :b:e highly :gun: dangerous :knife: and should :no_entry_sign: not :x: :b:e approached. " +
	"Citizens are instructed to remain inside and :lock:lock their :door:doors. \n\n" +
	"Remain tuned for further instructions. \n\n" +
	":warning:BRUH:warning:...:warning:BRUH:warning:...:warning:BRUH:warning:..."

// BruhCommand replies with the bruh copypasta.
type BruhCommand struct{}

func (c *BruhCommand) Name() string        { return "bruh" }
func (c *BruhCommand) Aliases() []string   { return nil }
func (c *BruhCommand) Description() string { return "Sends the bruh copypasta" }
func (c *BruhCommand) Category() string    { return "🃏 Fun" }
func (c *BruhCommand) OwnerOnly() bool     { return false }

func (c *BruhCommand) Run(ctx *command.Context) error {
	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, bruhPasta)
	return err
}
