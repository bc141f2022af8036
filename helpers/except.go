package helpers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/bwmarrin/discordgo"
	"github.com/getsentry/raven-go"
)

// RecoverableError is an error that shouldn't be sent to sentry
type RecoverableError interface {
	IsRecoverable() bool
}

func IsRecoverableError(err error) bool {
	if err == nil {
		return true
	}

	if recoverable, ok := err.(RecoverableError); ok {
		return recoverable.IsRecoverable()
	}

	return false
}

// Relax is a helper to reduce if-checks if panicking is allowed
// If $err is nil this is a no-op. Panics otherwise.
func Relax(err error) {
	if err != nil {
		panic(err)
	}
}

// RelaxLog logs an error to sentry without panicking
func RelaxLog(err error) {
	if err != nil {
		if DEBUG_MODE {
			cache.GetLogger().WithField("module", "except").Error("RelaxLog: " + err.Error())
		}
		raven.CaptureError(err, map[string]string{})
	}
}

// RelaxEmbed does nothing if $err is nil, prints a notice if lack of embed permissions is the issue, else sends it to Relax()
func RelaxEmbed(err error, channelID string, commandMessageID string) {
	if err != nil {
		if errD, ok := err.(*discordgo.RESTError); ok && errD.Message != nil {
			if errD.Message.Code == discordgo.ErrCodeCannotSendEmptyMessage || errD.Message.Code == discordgo.ErrCodeMissingPermissions {
				if channelID != "" {
					_, err = SendMessage(channelID, GetText("bot.errors.no-embed"))
					RelaxLog(err)
				}
				if commandMessageID != "" {
					err = cache.GetSession().MessageReactionAdd(channelID, commandMessageID, "🚫")
					RelaxLog(err)
				}
				return
			}
		}
		Relax(err)
	}
}

// Recover recover()s and prints a notice
func Recover() {
	err := recover()

	if err != nil {
		cache.GetLogger().WithField("module", "except").Error("Recovered from error: ", err)

		if errE, ok := err.(error); ok && IsRecoverableError(errE) {
			return
		}

		raven.CaptureError(toError(err), map[string]string{})
	}
}

// RecoverDiscord recover()s and sends a message to discord
func RecoverDiscord(msg *discordgo.Message) {
	err := recover()

	if err != nil {
		cache.GetLogger().WithField("module", "except").Error("Recovered from error (sending to discord): ", err)

		if errE, ok := err.(error); ok && IsRecoverableError(errE) {
			return
		}

		SendError(msg, err)
	}
}

// SendError informs the user about the error and sends it to sentry
func SendError(msg *discordgo.Message, err interface{}) {
	if errR, ok := err.(*discordgo.RESTError); ok && errR.Message != nil {
		if msg != nil {
			_, errNew := SendMessage(msg.ChannelID, GetTextF("bot.errors.discord-rest", errR.Message.Message))
			RelaxLog(errNew)
		}
	} else {
		if msg != nil {
			_, errNew := SendMessage(msg.ChannelID, GetTextF("bot.errors.general", toError(err).Error()))
			RelaxLog(errNew)
		}
	}

	raven.SetUserContext(&raven.User{
		ID:       msg.ID,
		Username: msg.Author.Username + "#" + msg.Author.Discriminator,
	})
	raven.CaptureError(toError(err), map[string]string{
		"ChannelID":       msg.ChannelID,
		"Content":         msg.Content,
		"Timestamp":       msg.Timestamp.Format(time.RFC3339),
		"TTS":             strconv.FormatBool(msg.TTS),
		"MentionEveryone": strconv.FormatBool(msg.MentionEveryone),
		"IsBot":           strconv.FormatBool(msg.Author.Bot),
	})
}

func toError(err interface{}) error {
	if errE, ok := err.(error); ok {
		return errE
	}
	return fmt.Errorf("%v", err)
}
