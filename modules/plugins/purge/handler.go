package purge

import (
	"strconv"
	"strings"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/models"
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

const purgeColor = "36393F"

type Handler struct {
	scheduler *scheduler
}

type action func(args []string, in *discordgo.Message, out **discordgo.MessageSend) (next action)

func logger() *logrus.Entry {
	return cache.GetLogger().WithField("module", "purge")
}

func (h *Handler) Commands() []string {
	return []string{
		"purgeconfig",
		"stoppurge",
		"purgestatus",
	}
}

func (h *Handler) Init(session *discordgo.Session) {
	defer helpers.Recover()

	h.scheduler = newScheduler()

	go h.resume(session)
}

// resume restarts loops for every persisted schedule where the bot still
// holds manage-messages. Runs once at startup, after the gateway is ready.
func (h *Handler) resume(session *discordgo.Session) {
	defer helpers.Recover()

	for _, guild := range session.State.Guilds {
		settings, err := helpers.PurgeSettingsGet(guild.ID)
		if err != nil {
			helpers.RelaxLog(err)
			continue
		}

		for channelID, intervalMinutes := range settings.Channels {
			if !h.hasManageMessages(channelID) {
				logger().Warn("not resuming purge for channel ", channelID, ", missing manage messages")
				continue
			}

			h.startLoop(guild.ID, channelID, intervalMinutes)
		}
	}
}

func (h *Handler) startLoop(guildID, channelID string, intervalMinutes int64) {
	h.scheduler.Add(channelID, func(stop <-chan struct{}) {
		h.runLoop(guildID, channelID, intervalMinutes, stop)
	})
}

func (h *Handler) Action(command string, content string, msg *discordgo.Message, session *discordgo.Session) {
	defer helpers.Recover()

	session.ChannelTyping(msg.ChannelID)

	var result *discordgo.MessageSend
	args := strings.Fields(content)

	var act action
	switch command {
	case "purgeconfig":
		act = h.actionConfig
	case "stoppurge":
		act = h.actionStop
	case "purgestatus":
		act = h.actionStatus
	default:
		return
	}

	for act != nil {
		act = act(args, msg, &result)
	}
}

func (h *Handler) actionFinish(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	_, err := helpers.SendComplex(in.ChannelID, *out)
	helpers.RelaxEmbed(err, in.ChannelID, in.ID)

	return nil
}

// _purgeconfig <#channel> <minutes>
func (h *Handler) actionConfig(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 2 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	target, err := helpers.GetChannelFromMention(channel.GuildID, args[0])
	if err != nil {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}

	intervalMinutes, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}
	if intervalMinutes < 1 {
		*out = h.newMsg("plugins.purge.interval-too-small")
		return h.actionFinish
	}

	if !h.hasManageMessages(target.ID) {
		*out = h.newMsg("plugins.purge.missing-permission")
		return h.actionFinish
	}

	_, err = helpers.PurgeSettingsUpdate(channel.GuildID, func(s models.PurgeSettings) (models.PurgeSettings, error) {
		s.Channels[target.ID] = intervalMinutes
		return s, nil
	})
	helpers.Relax(err)

	h.startLoop(channel.GuildID, target.ID, intervalMinutes)

	*out = h.newMsg("plugins.purge.config-success", target.ID, intervalMinutes)
	return h.actionFinish
}

// _stoppurge <#channel>
func (h *Handler) actionStop(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 1 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	target, err := helpers.GetChannelFromMention(channel.GuildID, args[0])
	if err != nil {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}

	var wasConfigured bool
	_, err = helpers.PurgeSettingsUpdate(channel.GuildID, func(s models.PurgeSettings) (models.PurgeSettings, error) {
		_, wasConfigured = s.Channels[target.ID]
		delete(s.Channels, target.ID)
		return s, nil
	})
	helpers.Relax(err)

	h.scheduler.Cancel(target.ID)

	if !wasConfigured {
		*out = h.newMsg("plugins.purge.not-configured", target.ID)
		return h.actionFinish
	}

	*out = h.newMsg("plugins.purge.stop-success", target.ID)
	return h.actionFinish
}

// _purgestatus
func (h *Handler) actionStatus(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	settings, err := helpers.PurgeSettingsGet(channel.GuildID)
	helpers.Relax(err)

	if len(settings.Channels) < 1 {
		*out = h.newMsg("plugins.purge.no-schedules")
		return h.actionFinish
	}

	msg := helpers.GetText("plugins.purge.status-header") + "\n"
	for channelID, intervalMinutes := range settings.Channels {
		state := "stopped"
		if h.scheduler.Running(channelID) {
			state = "running"
		}
		msg += helpers.GetTextF("plugins.purge.status-entry", channelID, intervalMinutes, state) + "\n"
	}

	for _, resultPage := range helpers.Pagify(msg, "\n") {
		_, err := helpers.SendMessage(in.ChannelID, resultPage)
		helpers.Relax(err)
	}

	return nil
}

func (h *Handler) newMsg(content string, replacements ...interface{}) *discordgo.MessageSend {
	if len(replacements) < 1 {
		return &discordgo.MessageSend{Content: helpers.GetText(content)}
	}
	return &discordgo.MessageSend{Content: helpers.GetTextF(content, replacements...)}
}
