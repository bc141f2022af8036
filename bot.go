package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/metrics"
	"github.com/Vect0r2/manuelbot/modules"
	"github.com/Vect0r2/manuelbot/ratelimits"
	"github.com/bwmarrin/discordgo"
	"github.com/getsentry/raven-go"
)

// BotOnReady gets called after the gateway connected
func BotOnReady(session *discordgo.Session, event *discordgo.Ready) {
	log := cache.GetLogger()

	log.WithField("module", "bot").Info("Connected to discord!")
	log.WithField("module", "bot").Info("Invite link: " + fmt.Sprintf(
		"https://discordapp.com/oauth2/authorize?client_id=%s&scope=bot&permissions=%s",
		helpers.ConfigString("discord.id"),
		helpers.ConfigString("discord.perms"),
	))

	// Cache the session
	cache.SetSession(session)

	// Load and init all modules
	modules.Init(session)

	// Run ratelimiter
	ratelimits.Container.Init()

	// Run async game-changer
	go changeGameInterval(session)
}

// BotOnMessageCreate gets called after a new message was sent
// This will be called after *every* message on *every* server so it should
// die as soon as possible or spawn costly work inside of coroutines.
func BotOnMessageCreate(session *discordgo.Session, message *discordgo.MessageCreate) {
	// Ignore other bots and @everyone/@here
	if message.Author == nil || message.Author.Bot || message.MentionEveryone {
		return
	}

	// Get the channel
	// Ignore the event if we cannot resolve the channel
	channel, err := helpers.GetChannel(message.ChannelID)
	if err != nil {
		go raven.CaptureError(err, map[string]string{})
		return
	}

	if channel.Type == discordgo.ChannelTypeDM {
		return
	}

	// Check if the message contains an @mention for us
	if strings.HasPrefix(message.Content, "<@") && len(message.Mentions) > 0 && message.Mentions[0].ID == session.State.User.ID {
		// Consume a key for this action
		if ratelimits.Container.Drain(1, message.Author.ID) != nil {
			return
		}

		msg := strings.TrimSpace(strings.Replace(message.Content, "<@"+session.State.User.ID+">", "", -1))

		switch {
		case strings.HasPrefix(strings.ToUpper(msg), "HELP"):
			metrics.CommandsExecuted.Add(1)
			sendHelp(message)
			return

		case strings.HasPrefix(strings.ToUpper(msg), "PREFIX"):
			metrics.CommandsExecuted.Add(1)
			prefix := helpers.GetPrefixForServer(channel.GuildID)
			if prefix == "" {
				session.ChannelMessageSend(channel.ID, helpers.GetText("bot.prefix.not-set"))
				return
			}
			session.ChannelMessageSend(channel.ID, helpers.GetTextF("bot.prefix.is", prefix))
			return

		case strings.HasPrefix(strings.ToUpper(msg), "SET PREFIX "):
			metrics.CommandsExecuted.Add(1)
			helpers.RequireAdmin(message.Message, func() {
				fields := strings.Fields(msg)
				prefix := fields[len(fields)-1]

				err := helpers.SetPrefixForServer(channel.GuildID, prefix)
				if err != nil {
					helpers.SendError(message.Message, err)
					return
				}
				session.ChannelMessageSend(channel.ID, helpers.GetTextF("bot.prefix.saved", prefix))
			})
			return
		}
		return
	}

	// Only continue if a prefix is set
	prefix := helpers.GetPrefixForServer(channel.GuildID)
	if prefix == "" {
		return
	}

	// Check if the message is prefixed for us
	// If not exit
	if !strings.HasPrefix(message.Content, prefix) {
		return
	}

	// Check if the user is allowed to request commands
	if !ratelimits.Container.HasKeys(message.Author.ID) && !helpers.IsBotAdmin(message.Author.ID) {
		session.ChannelMessageSend(message.ChannelID, helpers.GetTextF("bot.ratelimit.hit", message.Author.ID))

		ratelimits.Container.Set(message.Author.ID, -1)
		return
	}

	// Split the message into parts
	parts := strings.Fields(message.Content)

	// Save a sanitized version of the command (no prefix)
	cmd := strings.Replace(parts[0], prefix, "", 1)

	// Check if the user calls for help
	if cmd == "h" || cmd == "help" {
		metrics.CommandsExecuted.Add(1)
		sendHelp(message)
		return
	}

	// Separate arguments from the command
	content := strings.TrimSpace(strings.Replace(message.Content, prefix+cmd, "", 1))

	cache.GetLogger().WithField("module", "bot").Debug(fmt.Sprintf("%s (#%s): %s",
		message.Author.Username, message.Author.ID, message.Content))

	// Check if a module matches said command
	modules.CallBotPlugin(cmd, content, message.Message)
}

func sendHelp(message *discordgo.MessageCreate) {
	cache.GetSession().ChannelMessageSend(
		message.ChannelID,
		helpers.GetTextF("bot.help", message.Author.ID),
	)
}

// changeGameInterval updates the status line once an hour
func changeGameInterval(session *discordgo.Session) {
	for {
		guilds := session.State.Guilds

		err := session.UpdateGameStatus(0, fmt.Sprintf("on %d servers | _help", len(guilds)))
		if err != nil {
			raven.CaptureError(err, map[string]string{})
		}

		time.Sleep(1 * time.Hour)
	}
}
