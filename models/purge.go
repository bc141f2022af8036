package models

import "github.com/globalsign/mgo/bson"

const (
	PurgeSettingsTable MongoDbCollection = "purge_settings"
)

type PurgeSettings struct {
	ID      bson.ObjectId `bson:"_id,omitempty"`
	GuildID string

	// discord channel ID → purge interval in minutes
	Channels map[string]int64

	// discord channel ID → ID of the pinned countdown message, if any
	CountdownMessages map[string]string
}

func (PurgeSettings) Default(guildID string) PurgeSettings {
	return PurgeSettings{
		GuildID: guildID,

		Channels:          map[string]int64{},
		CountdownMessages: map[string]string{},
	}
}
