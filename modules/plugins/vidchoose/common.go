package vidchoose

import (
	"github.com/Vect0r2/manuelbot/cache"
	"github.com/sirupsen/logrus"
)

const (
	youtubeVideoBaseUrl   = "https://www.youtube.com/watch?v=%s"
	youtubeChannelBaseUrl = "https://www.youtube.com/channel/%s"
	youtubeColor          = "FF0000"

	apiKeyConfigPath = "google.api_key"

	// how many uploads to keep per catalog channel
	channelVideoLimit = 100

	singleVideoPrefix = "single_"
)

func logger() *logrus.Entry {
	return cache.GetLogger().WithField("module", "vidchoose")
}
