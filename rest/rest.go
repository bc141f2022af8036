package rest

import (
	"net/http"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/emicklei/go-restful"
)

func NewRestServices() []*restful.WebService {
	services := make([]*restful.WebService, 0)

	service := new(restful.WebService)
	service.
		Path("/bot/guilds").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)
	service.Route(service.GET("").To(GetAllBotGuilds))
	services = append(services, service)

	service = new(restful.WebService)
	service.
		Path("/bot/commands").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)
	service.Route(service.GET("").To(GetAllBotCommands))
	services = append(services, service)

	service = new(restful.WebService)
	service.
		Path("/vidchoose").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)
	service.Route(service.GET("/{guild-id}").To(GetVidChooseStatus))
	services = append(services, service)

	service = new(restful.WebService)
	service.
		Path("/purge").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)
	service.Route(service.GET("/{guild-id}").To(GetPurgeStatus))
	services = append(services, service)

	return services
}

type BotGuild struct {
	ID   string
	Name string
}

type VidChooseStatus struct {
	GuildID             string
	Enabled             bool
	PostChannelID       string
	PostIntervalMinutes int64
	ShortsEnabled       bool
	Channels            []VidChooseChannel
}

type VidChooseChannel struct {
	ID         string
	Name       string
	Weight     float64
	VideoCount int
	IsSingle   bool
}

type PurgeStatus struct {
	GuildID   string
	Schedules []PurgeSchedule
}

type PurgeSchedule struct {
	ChannelID       string
	IntervalMinutes int64
}

func GetAllBotGuilds(request *restful.Request, response *restful.Response) {
	guilds := cache.GetSession().State.Guilds

	result := make([]BotGuild, 0, len(guilds))
	for _, guild := range guilds {
		result = append(result, BotGuild{ID: guild.ID, Name: guild.Name})
	}

	response.WriteEntity(result)
}

func GetAllBotCommands(request *restful.Request, response *restful.Response) {
	response.WriteEntity(cache.GetPluginList())
}

func GetVidChooseStatus(request *restful.Request, response *restful.Response) {
	guildID := request.PathParameter("guild-id")

	settings, err := helpers.VidSettingsGet(guildID)
	if err != nil {
		response.WriteError(http.StatusInternalServerError, err)
		return
	}

	status := VidChooseStatus{
		GuildID:             guildID,
		Enabled:             settings.Enabled,
		PostChannelID:       settings.PostChannelID,
		PostIntervalMinutes: settings.PostIntervalMinutes,
		ShortsEnabled:       settings.ShortsEnabled,
		Channels:            make([]VidChooseChannel, 0, len(settings.Channels)),
	}
	for _, entry := range settings.Channels {
		status.Channels = append(status.Channels, VidChooseChannel{
			ID:         entry.ChannelID,
			Name:       entry.Name,
			Weight:     entry.Weight,
			VideoCount: len(entry.VideoIDs),
			IsSingle:   entry.IsSingle,
		})
	}

	response.WriteEntity(status)
}

func GetPurgeStatus(request *restful.Request, response *restful.Response) {
	guildID := request.PathParameter("guild-id")

	settings, err := helpers.PurgeSettingsGet(guildID)
	if err != nil {
		response.WriteError(http.StatusInternalServerError, err)
		return
	}

	status := PurgeStatus{
		GuildID:   guildID,
		Schedules: make([]PurgeSchedule, 0, len(settings.Channels)),
	}
	for channelID, intervalMinutes := range settings.Channels {
		status.Schedules = append(status.Schedules, PurgeSchedule{
			ChannelID:       channelID,
			IntervalMinutes: intervalMinutes,
		})
	}

	response.WriteEntity(status)
}
