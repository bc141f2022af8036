package helpers

import "github.com/Vect0r2/manuelbot/cache"

const prefixRedisKeyPrefix = "manuelbot:prefix:"

// GetPrefixForServer returns the guild's command prefix, the configured
// default when the guild never set one
func GetPrefixForServer(guildID string) string {
	prefix, err := cache.GetRedisClient().Get(prefixRedisKeyPrefix + guildID).Result()
	if err == nil && prefix != "" {
		return prefix
	}

	return ConfigString("discord.prefix")
}

// SetPrefixForServer overrides the command prefix for one guild
func SetPrefixForServer(guildID string, prefix string) error {
	return cache.GetRedisClient().Set(prefixRedisKeyPrefix+guildID, prefix, 0).Err()
}
