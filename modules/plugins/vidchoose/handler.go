package vidchoose

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/models"
	"github.com/Vect0r2/manuelbot/modules/plugins/vidchoose/service"
	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
)

type Handler struct {
	service  service.Service
	postLoop postLoop
}

type action func(args []string, in *discordgo.Message, out **discordgo.MessageSend) (next action)

func (h *Handler) Commands() []string {
	return []string{
		"vidchoose",
		"vc",
	}
}

func (h *Handler) Init(session *discordgo.Session) {
	defer helpers.Recover()

	h.service.Init(apiKeyConfigPath)
	h.postLoop.Init(&h.service)
}

func (h *Handler) Action(command string, content string, msg *discordgo.Message, session *discordgo.Session) {
	defer helpers.Recover()

	session.ChannelTyping(msg.ChannelID)

	var result *discordgo.MessageSend
	args := strings.Fields(content)

	action := h.actionStart
	for action != nil {
		action = action(args, msg, &result)
	}
}

func (h *Handler) actionStart(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if len(args) < 1 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	switch args[0] {
	case "setapi":
		return h.actionSetAPI
	case "addchannel":
		return h.actionAddChannel
	case "addvideo":
		return h.actionAddVideo
	case "remove":
		return h.actionRemove
	case "weight":
		return h.actionWeight
	case "setchannel":
		return h.actionSetChannel
	case "setinterval":
		return h.actionSetInterval
	case "sethistory":
		return h.actionSetHistory
	case "list":
		return h.actionList
	case "status":
		return h.actionStatus
	case "force":
		return h.actionForce
	case "enable":
		return h.actionEnable
	case "disable":
		return h.actionDisable
	case "shorts":
		return h.actionShorts
	case "testweights":
		return h.actionTestWeights
	case "clearhistory":
		return h.actionClearHistory
	case "update":
		return h.actionUpdate
	case "quota":
		return h.actionQuota
	default:
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}
}

func (h *Handler) actionFinish(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	_, err := helpers.SendComplex(in.ChannelID, *out)
	helpers.RelaxEmbed(err, in.ChannelID, in.ID)

	return nil
}

// _vc setapi <key>
func (h *Handler) actionSetAPI(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsBotAdmin(in.Author.ID) {
		*out = h.newMsg("botadmin.no_permission")
		return h.actionFinish
	}

	if len(args) < 2 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	err := h.service.SetAPIKey(args[1])
	if err != nil {
		logger().Error(err)
		*out = h.newMsg(err.Error())
		return h.actionFinish
	}

	*out = h.newMsg("plugins.vidchoose.setapi-success")
	return h.actionFinish
}

// _vc addchannel <url|handle|id> [weight]
func (h *Handler) actionAddChannel(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 2 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	weight := float64(1)
	if len(args) >= 3 {
		parsed, err := strconv.ParseFloat(args[2], 64)
		if err != nil || parsed < 0 {
			*out = h.newMsg("bot.arguments.invalid")
			return h.actionFinish
		}
		weight = parsed
	}

	channelID, err := h.resolveChannelID(args[1])
	if err != nil {
		logger().Error(err)
		*out = h.newMsg(err.Error())
		return h.actionFinish
	}
	if channelID == "" {
		*out = h.newMsg("plugins.vidchoose.channel-not-found")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	settings, err := helpers.VidSettingsGet(channel.GuildID)
	helpers.Relax(err)

	if settings.ChannelIndex(channelID) >= 0 {
		*out = h.newMsg("plugins.vidchoose.channel-exists")
		return h.actionFinish
	}

	entry, err := h.fetchChannelEntry(channelID, settings.ShortsEnabled)
	if err == errChannelNotFound {
		*out = h.newMsg("plugins.vidchoose.channel-not-found")
		return h.actionFinish
	}
	if err != nil {
		logger().Error(err)
		*out = h.newMsg(err.Error())
		return h.actionFinish
	}
	entry.Weight = weight

	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		if s.ChannelIndex(entry.ChannelID) >= 0 {
			return s, nil
		}
		s.Channels = append(s.Channels, entry)
		return s, nil
	})
	helpers.Relax(err)

	*out = h.newMsg("plugins.vidchoose.channel-added", entry.Name, len(entry.VideoIDs), entry.Weight)
	return h.actionFinish
}

// _vc addvideo <url> [weight]
func (h *Handler) actionAddVideo(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 2 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	weight := float64(1)
	if len(args) >= 3 {
		parsed, err := strconv.ParseFloat(args[2], 64)
		if err != nil || parsed < 0 {
			*out = h.newMsg("bot.arguments.invalid")
			return h.actionFinish
		}
		weight = parsed
	}

	videoID := h.resolveVideoID(args[1])
	if videoID == "" {
		*out = h.newMsg("plugins.vidchoose.video-not-found")
		return h.actionFinish
	}

	video, err := h.service.GetVideoSingle(videoID)
	if err != nil {
		logger().Error(err)
		*out = h.newMsg(err.Error())
		return h.actionFinish
	}
	if video == nil {
		*out = h.newMsg("plugins.vidchoose.video-not-found")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	settings, err := helpers.VidSettingsGet(channel.GuildID)
	helpers.Relax(err)

	if !settings.ShortsEnabled && video.ContentDetails != nil && service.IsShort(video.ContentDetails.Duration) {
		*out = h.newMsg("plugins.vidchoose.video-is-short")
		return h.actionFinish
	}

	catalogKey := singleVideoPrefix + videoID
	entry := models.VidChannelEntry{
		ChannelID:   catalogKey,
		Name:        video.Snippet.Title,
		Weight:      weight,
		VideoIDs:    []string{videoID},
		IsSingle:    true,
		LastUpdated: time.Now(),
	}

	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		if s.ChannelIndex(catalogKey) < 0 {
			s.Channels = append(s.Channels, entry)
		}
		s.Videos[videoID] = models.VidVideoEntry{
			ChannelID: catalogKey,
			Title:     video.Snippet.Title,
			AddedBy:   in.Author.ID,
			IsSingle:  true,
		}
		return s, nil
	})
	helpers.Relax(err)

	*out = h.newMsg("plugins.vidchoose.video-added", video.Snippet.Title)
	return h.actionFinish
}

// _vc remove <identifier>
func (h *Handler) actionRemove(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 2 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}
	identifier := strings.Join(args[1:], " ")

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	var removedName string
	var found bool
	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		s, removedName, found = h.removeCatalogEntry(s, identifier)
		return s, nil
	})
	helpers.Relax(err)

	if !found {
		*out = h.newMsg("plugins.vidchoose.entry-not-found")
		return h.actionFinish
	}

	*out = h.newMsg("plugins.vidchoose.entry-removed", removedName)
	return h.actionFinish
}

// _vc weight <identifier> <weight>
func (h *Handler) actionWeight(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 3 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	weight, err := strconv.ParseFloat(args[len(args)-1], 64)
	if err != nil || weight < 0 {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}
	identifier := strings.Join(args[1:len(args)-1], " ")

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	var changedName string
	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		index := h.findCatalogIndex(s, identifier)
		if index < 0 {
			return s, nil
		}

		s.Channels[index].Weight = weight
		changedName = s.Channels[index].Name
		return s, nil
	})
	helpers.Relax(err)

	if changedName == "" {
		*out = h.newMsg("plugins.vidchoose.entry-not-found")
		return h.actionFinish
	}

	*out = h.newMsg("plugins.vidchoose.weight-set", changedName, weight)
	return h.actionFinish
}

// _vc setchannel <#channel>
func (h *Handler) actionSetChannel(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
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

	target, err := helpers.GetChannelFromMention(channel.GuildID, args[1])
	if err != nil {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}

	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		s.PostChannelID = target.ID
		return s, nil
	})
	helpers.Relax(err)

	*out = h.newMsg("plugins.vidchoose.postchannel-set", target.ID)
	return h.actionFinish
}

// _vc setinterval <minutes>
func (h *Handler) actionSetInterval(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 2 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	minutes, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}
	if minutes < 1 {
		*out = h.newMsg("plugins.vidchoose.interval-too-small")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		s.PostIntervalMinutes = minutes
		return s, nil
	})
	helpers.Relax(err)

	*out = h.newMsg("plugins.vidchoose.interval-set", minutes)
	return h.actionFinish
}

// _vc sethistory <channels> <videos>
func (h *Handler) actionSetHistory(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 3 {
		*out = h.newMsg("bot.arguments.too-few")
		return h.actionFinish
	}

	channelSize, err1 := strconv.Atoi(args[1])
	videoSize, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil || channelSize < 1 || videoSize < 1 {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		s.ChannelHistorySize = channelSize
		s.VideoHistorySize = videoSize

		// shrink existing buffers to the new bounds
		if len(s.LastChannels) > channelSize {
			s.LastChannels = s.LastChannels[:channelSize]
		}
		if len(s.LastVideos) > videoSize {
			s.LastVideos = s.LastVideos[:videoSize]
		}
		return s, nil
	})
	helpers.Relax(err)

	*out = h.newMsg("plugins.vidchoose.history-set", channelSize, videoSize)
	return h.actionFinish
}

// _vc list
func (h *Handler) actionList(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	settings, err := helpers.VidSettingsGet(channel.GuildID)
	helpers.Relax(err)

	if len(settings.Channels) < 1 {
		*out = h.newMsg("plugins.vidchoose.no-entries")
		return h.actionFinish
	}

	msg := ""
	for _, entry := range settings.Channels {
		kind := "channel"
		if entry.IsSingle {
			kind = "video"
		}
		msg += helpers.GetTextF("plugins.vidchoose.list-entry",
			entry.Name, kind, entry.Weight, len(entry.VideoIDs)) + "\n"
	}

	for _, resultPage := range helpers.Pagify(msg, "\n") {
		_, err := helpers.SendMessage(in.ChannelID, resultPage)
		helpers.Relax(err)
	}

	*out = h.newMsg("plugins.vidchoose.list-sum", len(settings.Channels))
	return h.actionFinish
}

// _vc status
func (h *Handler) actionStatus(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	settings, err := helpers.VidSettingsGet(channel.GuildID)
	helpers.Relax(err)

	state := "enabled"
	if !settings.Enabled {
		state = "disabled"
	}

	postChannel := "not set"
	if settings.PostChannelID != "" {
		postChannel = "<#" + settings.PostChannelID + ">"
	}

	nextPost := "now"
	if settings.PostChannelID != "" && !settings.LastPostTime.IsZero() {
		due := settings.LastPostTime.Add(time.Duration(settings.PostIntervalMinutes) * time.Minute)
		if remaining := time.Until(due); remaining > 0 {
			nextPost = "in " + helpers.HumanizeDuration(remaining)
		}
	}

	totalVideos := 0
	for _, entry := range settings.Channels {
		totalVideos += len(entry.VideoIDs)
	}

	shorts := "excluded"
	if settings.ShortsEnabled {
		shorts = "included"
	}

	data := &discordgo.MessageSend{
		Embed: &discordgo.MessageEmbed{
			Title: helpers.GetText("plugins.vidchoose.status-title"),
			Color: helpers.GetDiscordColorFromHex(youtubeColor),
			Fields: []*discordgo.MessageEmbedField{
				{Name: "State", Value: state, Inline: true},
				{Name: "Post channel", Value: postChannel, Inline: true},
				{Name: "Interval", Value: strconv.FormatInt(settings.PostIntervalMinutes, 10) + " minutes", Inline: true},
				{Name: "Next post", Value: nextPost, Inline: true},
				{Name: "Catalog", Value: humanize.Comma(int64(len(settings.Channels))) + " channels, " + humanize.Comma(int64(totalVideos)) + " videos", Inline: true},
				{Name: "Shorts", Value: shorts, Inline: true},
				{Name: "History", Value: fmt.Sprintf("%d channels, %d videos", settings.ChannelHistorySize, settings.VideoHistorySize), Inline: true},
			},
		},
	}

	*out = data
	return h.actionFinish
}

// _vc force
func (h *Handler) actionForce(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	settings, err := helpers.VidSettingsGet(channel.GuildID)
	helpers.Relax(err)

	if settings.PostChannelID == "" {
		*out = h.newMsg("plugins.vidchoose.no-post-channel")
		return h.actionFinish
	}

	err = h.postLoop.post(channel.GuildID)
	if err != nil {
		*out = h.newMsg("plugins.vidchoose.force-failed", err.Error())
		return h.actionFinish
	}

	*out = h.newMsg("plugins.vidchoose.force-success")
	return h.actionFinish
}

// _vc enable / _vc disable
func (h *Handler) actionEnable(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	return h.setEnabled(true, "plugins.vidchoose.enabled")
}

func (h *Handler) actionDisable(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	return h.setEnabled(false, "plugins.vidchoose.disabled")
}

func (h *Handler) setEnabled(enabled bool, successKey string) action {
	return func(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
		if !helpers.IsAdmin(in) {
			*out = h.newMsg("admin.no_permission")
			return h.actionFinish
		}

		channel, err := helpers.GetChannel(in.ChannelID)
		helpers.Relax(err)

		_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
			s.Enabled = enabled
			return s, nil
		})
		helpers.Relax(err)

		*out = h.newMsg(successKey)
		return h.actionFinish
	}
}

// _vc shorts <on|off>
func (h *Handler) actionShorts(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
		*out = h.newMsg("bot.arguments.invalid")
		return h.actionFinish
	}
	enabled := args[1] == "on"

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		s.ShortsEnabled = enabled
		return s, nil
	})
	helpers.Relax(err)

	if enabled {
		*out = h.newMsg("plugins.vidchoose.shorts-on")
	} else {
		// existing catalogs keep their shorts until the next update run
		*out = h.newMsg("plugins.vidchoose.shorts-off")
	}
	return h.actionFinish
}

// _vc testweights [trials]
func (h *Handler) actionTestWeights(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	trials := 100
	if len(args) >= 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			*out = h.newMsg("bot.arguments.invalid")
			return h.actionFinish
		}
		trials = parsed
	}
	if trials < 10 {
		trials = 10
	}
	if trials > 1000 {
		trials = 1000
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	settings, err := helpers.VidSettingsGet(channel.GuildID)
	helpers.Relax(err)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		index := pickChannel(settings.Channels, rng)
		if index < 0 {
			*out = h.newMsg("plugins.vidchoose.no-entries")
			return h.actionFinish
		}
		counts[index]++
	}

	total := float64(0)
	for _, entry := range settings.Channels {
		if entry.Weight > 0 && len(entry.VideoIDs) > 0 {
			total += entry.Weight
		}
	}

	msg := helpers.GetTextF("plugins.vidchoose.testweights-header", trials) + "\n"
	for index, entry := range settings.Channels {
		if entry.Weight <= 0 || len(entry.VideoIDs) < 1 {
			continue
		}
		expected := entry.Weight / total * 100
		actual := float64(counts[index]) / float64(trials) * 100
		msg += fmt.Sprintf("`%s`: %.1f%% (expected %.1f%%)\n", entry.Name, actual, expected)
	}

	for _, resultPage := range helpers.Pagify(msg, "\n") {
		_, err := helpers.SendMessage(in.ChannelID, resultPage)
		helpers.Relax(err)
	}

	return nil
}

// _vc clearhistory
func (h *Handler) actionClearHistory(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		s.LastChannels = []string{}
		s.LastVideos = []string{}
		return s, nil
	})
	helpers.Relax(err)

	*out = h.newMsg("plugins.vidchoose.history-cleared")
	return h.actionFinish
}

// _vc update [channel]
func (h *Handler) actionUpdate(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsAdmin(in) {
		*out = h.newMsg("admin.no_permission")
		return h.actionFinish
	}

	only := ""
	if len(args) >= 2 {
		resolved, err := h.resolveChannelID(strings.Join(args[1:], " "))
		if err != nil {
			logger().Error(err)
			*out = h.newMsg(err.Error())
			return h.actionFinish
		}
		if resolved == "" {
			*out = h.newMsg("plugins.vidchoose.channel-not-found")
			return h.actionFinish
		}
		only = resolved
	}

	channel, err := helpers.GetChannel(in.ChannelID)
	helpers.Relax(err)

	var updated, failed int
	_, err = helpers.VidSettingsUpdate(channel.GuildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		updated, failed = h.refreshChannels(&s, only)
		return s, nil
	})
	helpers.Relax(err)

	*out = h.newMsg("plugins.vidchoose.update-result", updated, failed)
	return h.actionFinish
}

// _vc quota
func (h *Handler) actionQuota(args []string, in *discordgo.Message, out **discordgo.MessageSend) action {
	if !helpers.IsBotAdmin(in.Author.ID) {
		*out = h.newMsg("botadmin.no_permission")
		return h.actionFinish
	}

	if !h.service.Available() {
		*out = h.newMsg("plugins.vidchoose.service-not-available")
		return h.actionFinish
	}

	quota := h.service.Quota()
	resetIn := helpers.HumanizeDuration(time.Until(time.Unix(quota.ResetTime, 0)))

	*out = h.newMsg("plugins.vidchoose.quota",
		humanize.Comma(quota.Left), humanize.Comma(quota.Daily), resetIn)
	return h.actionFinish
}

// removeCatalogEntry drops the entry matching $identifier and its dependent
// video entries. The found flag distinguishes a miss from removing an entry
// whose stored name happens to be empty.
func (h *Handler) removeCatalogEntry(s models.VidChooseSettings, identifier string) (models.VidChooseSettings, string, bool) {
	index := h.findCatalogIndex(s, identifier)
	if index < 0 {
		return s, "", false
	}

	removed := s.Channels[index]
	s.Channels = append(s.Channels[:index], s.Channels[index+1:]...)

	for videoID, video := range s.Videos {
		if video.ChannelID == removed.ChannelID {
			delete(s.Videos, videoID)
		}
	}

	return s, removed.Name, true
}

// findCatalogIndex locates a catalog entry by, in order: raw catalog key,
// pattern-resolved channel id, single-video key for a video reference,
// case-insensitive display name.
func (h *Handler) findCatalogIndex(settings models.VidChooseSettings, identifier string) int {
	if index := settings.ChannelIndex(identifier); index >= 0 {
		return index
	}

	ref := h.service.Filter().ParseChannelRef(identifier)
	if ref.Kind == service.ChannelRefID {
		if index := settings.ChannelIndex(ref.Value); index >= 0 {
			return index
		}
	}

	if videoID := h.resolveVideoID(identifier); videoID != "" {
		if index := settings.ChannelIndex(singleVideoPrefix + videoID); index >= 0 {
			return index
		}
	}

	return settings.ChannelIndexByName(identifier)
}

func (h *Handler) newMsg(content string, replacements ...interface{}) *discordgo.MessageSend {
	if len(replacements) < 1 {
		return &discordgo.MessageSend{Content: helpers.GetText(content)}
	}
	return &discordgo.MessageSend{Content: helpers.GetTextF(content, replacements...)}
}
