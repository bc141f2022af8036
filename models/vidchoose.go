package models

import (
	"strings"
	"time"

	"github.com/globalsign/mgo/bson"
)

const (
	VidChooseSettingsTable MongoDbCollection = "vidchoose_settings"

	VidChooseQuotaRedisKey = "manuelbot:vidchoose:youtube-quota"
)

// VidChannelEntry is one source in a guild's video catalog: either a youtube
// channel with its cached upload list, or a single-video pseudo channel.
// The catalog is a slice so the weighted walk visits entries in the order
// they were added.
type VidChannelEntry struct {
	ChannelID   string
	Name        string
	Weight      float64
	VideoIDs    []string
	IsSingle    bool
	LastUpdated time.Time
}

type VidVideoEntry struct {
	ChannelID string
	Title     string
	AddedBy   string
	IsSingle  bool
}

type VidChooseSettings struct {
	ID      bson.ObjectId `bson:"_id,omitempty"`
	GuildID string

	PostChannelID       string
	PostIntervalMinutes int64
	ChannelHistorySize  int
	VideoHistorySize    int

	// most-recent-first, bounded by the history sizes above
	LastChannels []string
	LastVideos   []string

	Channels []VidChannelEntry
	Videos   map[string]VidVideoEntry

	LastPostTime  time.Time
	Enabled       bool
	ShortsEnabled bool
}

func (VidChooseSettings) Default(guildID string) VidChooseSettings {
	return VidChooseSettings{
		GuildID: guildID,

		PostIntervalMinutes: 30,
		ChannelHistorySize:  5,
		VideoHistorySize:    10,

		LastChannels: []string{},
		LastVideos:   []string{},

		Channels: []VidChannelEntry{},
		Videos:   map[string]VidVideoEntry{},

		Enabled:       true,
		ShortsEnabled: false,
	}
}

// ChannelIndex returns the catalog position of $channelID, or -1.
func (s VidChooseSettings) ChannelIndex(channelID string) int {
	for i, entry := range s.Channels {
		if entry.ChannelID == channelID {
			return i
		}
	}
	return -1
}

// ChannelIndexByName returns the position of the first entry whose name
// matches $name case-insensitively, or -1.
func (s VidChooseSettings) ChannelIndexByName(name string) int {
	for i, entry := range s.Channels {
		if strings.EqualFold(entry.Name, name) {
			return i
		}
	}
	return -1
}

type YoutubeQuota struct {
	Daily     int64
	Left      int64
	ResetTime int64
}
