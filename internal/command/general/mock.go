package general

import (
	"errors"
	"math/rand"
	"strings"
	"unicode"

	"bruhbot/internal/command"
)

// MockCommand replies with a randomly-capitalized version of the given
// text, or of the message the invoker replied to.
type MockCommand struct{}

func (c *MockCommand) Name() string        { return "mock" }
func (c *MockCommand) Aliases() []string   { return nil }
func (c *MockCommand) Description() string { return "rAnDOmLy cAPitAliZes text" }
func (c *MockCommand) Category() string    { return "🃏 Fun" }
func (c *MockCommand) OwnerOnly() bool     { return false }

func (c *MockCommand) Run(ctx *command.Context) error {
	text := strings.Join(ctx.Args, " ")
	if text == "" {
		if ref := ctx.Message.ReferencedMessage; ref != nil {
			text = ref.Content
		}
	}
	if text == "" {
		return errors.New("give me text to mock, or reply to a message")
	}

	_, err := ctx.Session.ChannelMessageSend(ctx.Message.ChannelID, mockText(text, coinFlip))
	return err
}

func coinFlip() bool {
	return rand.Intn(2) == 1
}

// mockText flips each letter's case by coin toss.
func mockText(original string, coin func() bool) string {
	var b strings.Builder
	b.Grow(len(original))
	for _, r := range original {
		if coin() {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
