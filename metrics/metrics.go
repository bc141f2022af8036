package metrics

import (
	"expvar"
	"net/http"
	"runtime"
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/bwmarrin/discordgo"
)

var (
	// MessagesReceived counts all ever received messages
	MessagesReceived = expvar.NewInt("messages_received")

	// UserCount counts all logged-in users
	UserCount = expvar.NewInt("user_count")

	// ChannelCount counts all watching channels
	ChannelCount = expvar.NewInt("channel_count")

	// GuildCount counts all joined guilds
	GuildCount = expvar.NewInt("guild_count")

	// CommandsExecuted increases after each command execution
	CommandsExecuted = expvar.NewInt("commands_executed")

	// VideosPosted increases after each video posted by the video loop
	VideosPosted = expvar.NewInt("videos_posted")

	// PurgesExecuted increases after each completed channel purge
	PurgesExecuted = expvar.NewInt("purges_executed")

	// MessagesPurged counts all messages deleted by purges
	MessagesPurged = expvar.NewInt("messages_purged")

	// YoutubeQuotaSpent counts youtube api quota units used since boot
	YoutubeQuotaSpent = expvar.NewInt("youtube_quota_spent")

	// CoroutineCount counts all running goroutines
	CoroutineCount = expvar.NewInt("coroutine_count")

	// Uptime stores the timestamp of the bot's boot
	Uptime = expvar.NewInt("uptime")
)

// Init starts a http server on the configured metrics address
func Init() {
	address := helpers.ConfigString("metrics_address")
	if address == "" {
		address = "127.0.0.1:1337"
	}
	cache.GetLogger().WithField("module", "metrics").Info("listening on ", address)
	Uptime.Set(time.Now().Unix())
	go http.ListenAndServe(address, nil)
}

// OnReady listens for said discord event
func OnReady(session *discordgo.Session, event *discordgo.Ready) {
	go CollectDiscordMetrics(session)
	go CollectRuntimeMetrics()
}

// OnMessageCreate listens for said discord event
func OnMessageCreate(session *discordgo.Session, event *discordgo.MessageCreate) {
	MessagesReceived.Add(1)
}

// CollectDiscordMetrics counts Guilds, Channels and Users
func CollectDiscordMetrics(session *discordgo.Session) {
	for {
		time.Sleep(15 * time.Second)

		users := make(map[string]string)
		channels := 0
		guilds := session.State.Guilds

		for _, guild := range guilds {
			channels += len(guild.Channels)

			for _, u := range guild.Members {
				users[u.User.ID] = u.User.Username
			}
		}

		UserCount.Set(int64(len(users)))
		ChannelCount.Set(int64(channels))
		GuildCount.Set(int64(len(guilds)))
	}
}

// CollectRuntimeMetrics counts all running goroutines
func CollectRuntimeMetrics() {
	for {
		time.Sleep(15 * time.Second)
		CoroutineCount.Set(int64(runtime.NumGoroutine()))
	}
}
