package purge

import (
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/metrics"
	"github.com/Vect0r2/manuelbot/models"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const (
	// backoff after a transient delete/send failure
	purgeRetryDelay = 60 * time.Second

	// bulk delete rejects messages older than this
	bulkDeleteMaxAge = 14 * 24 * time.Hour
)

// runLoop is one channel's purge cycle: sleep with a ticking countdown,
// verify permission, delete everything, post a fresh countdown. It runs
// until cancelled or until the bot loses manage-messages.
func (h *Handler) runLoop(guildID, channelID string, intervalMinutes int64, stop <-chan struct{}) {
	defer helpers.Recover()
	defer h.scheduler.remove(channelID, stop)

	interval := time.Duration(intervalMinutes) * time.Minute

	log := logger().WithFields(logrus.Fields{
		"guild":   guildID,
		"channel": channelID,
	})
	log.Info("purge loop started, interval ", intervalMinutes, "m")

	for {
		deadline := time.Now().Add(interval)
		h.refreshCountdown(guildID, channelID, deadline)

		if !h.sleepWithCountdown(guildID, channelID, deadline, stop) {
			log.Info("purge loop cancelled")
			h.dropCountdown(guildID, channelID)
			return
		}

		if !h.hasManageMessages(channelID) {
			log.Warn("manage messages permission lost, purge loop ends")
			h.dropCountdown(guildID, channelID)
			return
		}

		deleted, err := h.purgeChannel(channelID)
		if err != nil {
			if isPermissionError(err) {
				log.Warn("purge forbidden, purge loop ends: ", err.Error())
				h.dropCountdown(guildID, channelID)
				return
			}

			// transient failure, back off and go around again
			log.Warn("purge failed, retrying after backoff: ", err.Error())
			select {
			case <-stop:
				return
			case <-time.After(purgeRetryDelay):
			}
			continue
		}

		metrics.PurgesExecuted.Add(1)
		metrics.MessagesPurged.Add(int64(deleted))
		log.Info("purged ", deleted, " messages")
	}
}

// sleepWithCountdown waits until $deadline, refreshing the countdown
// message once a minute. Returns false when cancelled.
func (h *Handler) sleepWithCountdown(guildID, channelID string, deadline time.Time, stop <-chan struct{}) bool {
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return true
		}

		step := time.Minute
		if remaining < step {
			step = remaining
		}

		select {
		case <-stop:
			return false
		case <-time.After(step):
			h.refreshCountdown(guildID, channelID, deadline)
		}
	}
}

// purgeChannel deletes all messages in pages of 100. Messages young
// enough go through bulk delete, older ones one by one.
func (h *Handler) purgeChannel(channelID string) (deleted int, err error) {
	session := cache.GetSession()

	for {
		messages, err := session.ChannelMessages(channelID, 100, "", "", "")
		if err != nil {
			return deleted, err
		}
		if len(messages) < 1 {
			return deleted, nil
		}

		bulkIDs, oldIDs := splitDeletable(messages, time.Now())

		if len(bulkIDs) > 0 {
			if err = session.ChannelMessagesBulkDelete(channelID, bulkIDs); err != nil {
				return deleted, err
			}
			deleted += len(bulkIDs)
		}

		for _, id := range oldIDs {
			if err = session.ChannelMessageDelete(channelID, id); err != nil {
				return deleted, err
			}
			deleted++
		}

		if len(messages) < 100 {
			return deleted, nil
		}
	}
}

// splitDeletable partitions messages into bulk-deletable ids and ids that
// have to go one by one. Bulk delete rejects messages older than fourteen
// days and requires at least two ids, a lone candidate is demoted.
func splitDeletable(messages []*discordgo.Message, now time.Time) (bulkIDs []string, oldIDs []string) {
	bulkIDs = make([]string, 0, len(messages))
	oldIDs = make([]string, 0)

	for _, message := range messages {
		created, err := discordgo.SnowflakeTimestamp(message.ID)
		if err == nil && now.Sub(created) < bulkDeleteMaxAge {
			bulkIDs = append(bulkIDs, message.ID)
		} else {
			oldIDs = append(oldIDs, message.ID)
		}
	}

	if len(bulkIDs) == 1 {
		oldIDs = append(oldIDs, bulkIDs[0])
		bulkIDs = bulkIDs[:0]
	}

	return bulkIDs, oldIDs
}

// refreshCountdown edits the pinned countdown message, creating and
// pinning it when the channel has none yet. Failures here are cosmetic,
// they never abort the purge cycle.
func (h *Handler) refreshCountdown(guildID, channelID string, deadline time.Time) {
	settings, err := helpers.PurgeSettingsGet(guildID)
	if err != nil {
		helpers.RelaxLog(err)
		return
	}

	embed := countdownEmbed(deadline)
	session := cache.GetSession()

	if messageID, ok := settings.CountdownMessages[channelID]; ok && messageID != "" {
		if _, err = session.ChannelMessageEditEmbed(channelID, messageID, embed); err == nil {
			return
		}
		// edit failed, the message is probably gone, fall through and recreate
	}

	messages, err := helpers.SendEmbed(channelID, embed)
	if err != nil || len(messages) < 1 {
		helpers.RelaxLog(err)
		return
	}
	message := messages[len(messages)-1]

	if err = session.ChannelMessagePin(channelID, message.ID); err != nil {
		helpers.RelaxLog(err)
	}

	_, err = helpers.PurgeSettingsUpdate(guildID, func(s models.PurgeSettings) (models.PurgeSettings, error) {
		s.CountdownMessages[channelID] = message.ID
		return s, nil
	})
	helpers.RelaxLog(err)
}

// dropCountdown deletes the countdown message and forgets its id
func (h *Handler) dropCountdown(guildID, channelID string) {
	settings, err := helpers.PurgeSettingsGet(guildID)
	if err != nil {
		helpers.RelaxLog(err)
		return
	}

	if messageID, ok := settings.CountdownMessages[channelID]; ok && messageID != "" {
		err = cache.GetSession().ChannelMessageDelete(channelID, messageID)
		helpers.RelaxLog(err)
	}

	_, err = helpers.PurgeSettingsUpdate(guildID, func(s models.PurgeSettings) (models.PurgeSettings, error) {
		delete(s.CountdownMessages, channelID)
		return s, nil
	})
	helpers.RelaxLog(err)
}

func countdownEmbed(deadline time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       helpers.GetText("plugins.purge.countdown-title"),
		Description: helpers.GetTextF("plugins.purge.countdown-remaining", helpers.HumanizeDuration(time.Until(deadline))),
		Color:       helpers.GetDiscordColorFromHex(purgeColor),
	}
}

func (h *Handler) hasManageMessages(channelID string) bool {
	session := cache.GetSession()

	perms, err := session.State.UserChannelPermissions(session.State.User.ID, channelID)
	if err != nil {
		helpers.RelaxLog(err)
		return false
	}

	return perms&discordgo.PermissionManageMessages > 0
}

func isPermissionError(err error) bool {
	restErr, ok := err.(*discordgo.RESTError)
	if !ok || restErr.Message == nil {
		return false
	}

	return restErr.Message.Code == discordgo.ErrCodeMissingPermissions ||
		restErr.Message.Code == discordgo.ErrCodeMissingAccess
}
