package helpers

import (
	"sync"
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/models"
	rediscache "github.com/go-redis/cache"
	"github.com/globalsign/mgo/bson"
)

const (
	vidSettingsCacheKeyPrefix   = "manuelbot:vidchoose:settings:"
	purgeSettingsCacheKeyPrefix = "manuelbot:purge:settings:"

	settingsCacheLifetime = time.Hour
)

var (
	settingsLocks     = map[string]*sync.Mutex{}
	settingsLocksLock sync.Mutex
)

// guildSettingsLock returns the mutex serialising settings writes for
// one guild and table
func guildSettingsLock(key string) *sync.Mutex {
	settingsLocksLock.Lock()
	defer settingsLocksLock.Unlock()

	if _, ok := settingsLocks[key]; !ok {
		settingsLocks[key] = &sync.Mutex{}
	}
	return settingsLocks[key]
}

// VidSettingsGet returns the video poster settings for $guildID,
// defaults if the guild has none yet
func VidSettingsGet(guildID string) (settings models.VidChooseSettings, err error) {
	if cache.GetRedisCacheCodec().Get(vidSettingsCacheKeyPrefix+guildID, &settings) == nil {
		return settings, nil
	}

	err = MdbOne(MdbCollection(models.VidChooseSettingsTable).Find(bson.M{"guildid": guildID}), &settings)
	if err != nil {
		if IsMdbNotFound(err) {
			return settings.Default(guildID), nil
		}
		return settings, err
	}

	settingsCacheSet(vidSettingsCacheKeyPrefix+guildID, settings)
	return settings, nil
}

// VidSettingsSet persists the video poster settings and refreshes the cache
func VidSettingsSet(settings models.VidChooseSettings) (err error) {
	err = MDbUpsert(models.VidChooseSettingsTable, bson.M{"guildid": settings.GuildID}, settings)
	if err != nil {
		return err
	}

	settingsCacheSet(vidSettingsCacheKeyPrefix+settings.GuildID, settings)
	return nil
}

// VidSettingsUpdate applies a read-transform-write under the guild's
// settings lock so concurrent command handlers and the posting loop
// never clobber each other's writes
func VidSettingsUpdate(guildID string, apply func(models.VidChooseSettings) (models.VidChooseSettings, error)) (settings models.VidChooseSettings, err error) {
	lock := guildSettingsLock(models.VidChooseSettingsTable.String() + ":" + guildID)
	lock.Lock()
	defer lock.Unlock()

	settings, err = VidSettingsGet(guildID)
	if err != nil {
		return settings, err
	}

	settings, err = apply(settings)
	if err != nil {
		return settings, err
	}

	return settings, VidSettingsSet(settings)
}

// PurgeSettingsGet returns the purge settings for $guildID,
// defaults if the guild has none yet
func PurgeSettingsGet(guildID string) (settings models.PurgeSettings, err error) {
	if cache.GetRedisCacheCodec().Get(purgeSettingsCacheKeyPrefix+guildID, &settings) == nil {
		return settings, nil
	}

	err = MdbOne(MdbCollection(models.PurgeSettingsTable).Find(bson.M{"guildid": guildID}), &settings)
	if err != nil {
		if IsMdbNotFound(err) {
			return settings.Default(guildID), nil
		}
		return settings, err
	}

	settingsCacheSet(purgeSettingsCacheKeyPrefix+guildID, settings)
	return settings, nil
}

// PurgeSettingsSet persists the purge settings and refreshes the cache
func PurgeSettingsSet(settings models.PurgeSettings) (err error) {
	err = MDbUpsert(models.PurgeSettingsTable, bson.M{"guildid": settings.GuildID}, settings)
	if err != nil {
		return err
	}

	settingsCacheSet(purgeSettingsCacheKeyPrefix+settings.GuildID, settings)
	return nil
}

// PurgeSettingsUpdate applies a read-transform-write under the guild's
// settings lock
func PurgeSettingsUpdate(guildID string, apply func(models.PurgeSettings) (models.PurgeSettings, error)) (settings models.PurgeSettings, err error) {
	lock := guildSettingsLock(models.PurgeSettingsTable.String() + ":" + guildID)
	lock.Lock()
	defer lock.Unlock()

	settings, err = PurgeSettingsGet(guildID)
	if err != nil {
		return settings, err
	}

	settings, err = apply(settings)
	if err != nil {
		return settings, err
	}

	return settings, PurgeSettingsSet(settings)
}

func settingsCacheSet(key string, object interface{}) {
	err := cache.GetRedisCacheCodec().Set(&rediscache.Item{
		Key:        key,
		Object:     object,
		Expiration: settingsCacheLifetime,
	})
	RelaxLog(err)
}
