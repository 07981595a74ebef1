// Package commands defines the closed set of chat commands the bot understands
// and the help text generated from it.
package commands

import (
	"strings"

	"github.com/go-telegram/bot/models"
)

// Command is a chat command the bot responds to.
type Command int

const (
	// Help replies with the list of supported commands.
	Help Command = iota
)

const helpHeader = "The following commands are supported:"

type info struct {
	name        string
	description string
}

var infos = map[Command]info{
	Help: {name: "help", description: "display this text."},
}

// All lists every command in declaration order.
var All = []Command{Help}

// Name returns the command name without the leading slash.
func (c Command) Name() string {
	return infos[c].name
}

// Description returns the human-readable description of the command.
func (c Command) Description() string {
	return infos[c].description
}

func (c Command) String() string {
	return "/" + c.Name()
}

// Parse matches message text against the known commands. It accepts
// "/help", "/help@<botUsername>" and trailing arguments. Commands addressed
// to a different bot are rejected. The command name is case-insensitive.
func Parse(text, botUsername string) (Command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return 0, false
	}

	name, target, addressed := strings.Cut(strings.TrimPrefix(fields[0], "/"), "@")
	if addressed && (botUsername == "" || !strings.EqualFold(target, botUsername)) {
		return 0, false
	}

	for _, c := range All {
		if strings.EqualFold(name, c.Name()) {
			return c, true
		}
	}
	return 0, false
}

// Descriptions renders the help text listing every command.
func Descriptions() string {
	var sb strings.Builder
	sb.WriteString(helpHeader)
	sb.WriteString("\n")
	for _, c := range All {
		sb.WriteString("\n")
		sb.WriteString(c.String())
		sb.WriteString(" - ")
		sb.WriteString(c.Description())
	}
	return sb.String()
}

// BotCommands converts the command set to the form accepted by setMyCommands.
func BotCommands() []models.BotCommand {
	out := make([]models.BotCommand, 0, len(All))
	for _, c := range All {
		out = append(out, models.BotCommand{Command: c.Name(), Description: c.Description()})
	}
	return out
}
