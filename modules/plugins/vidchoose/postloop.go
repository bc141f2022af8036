package vidchoose

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/metrics"
	"github.com/Vect0r2/manuelbot/models"
	"github.com/Vect0r2/manuelbot/modules/plugins/vidchoose/service"
	"github.com/sirupsen/logrus"
)

type postLoop struct {
	service *service.Service
	rng     *rand.Rand
	rngLock sync.Mutex
	running uint32
}

func (p *postLoop) Init(s *service.Service) {
	if s == nil {
		helpers.Relax(fmt.Errorf("post loop initialize failed"))
	}
	p.service = s
	p.rng = rand.New(rand.NewSource(time.Now().UnixNano()))

	p.start()
}

func (p *postLoop) start() {
	// Checks if the loop is already running
	if atomic.SwapUint32(&p.running, uint32(1)) == 1 {
		logger().Error("post loop already running")
		return
	}

	go p.run()
}

func (p *postLoop) run() {
	defer helpers.Recover()
	defer func() {
		atomic.StoreUint32(&p.running, uint32(0))

		logger().Error("The post loop died. Please investigate! Will be restarted in 60 seconds")
		time.Sleep(60 * time.Second)

		p.start()
	}()

	for ; ; time.Sleep(60 * time.Second) {
		p.check()
	}
}

// check walks all guilds serially, one guild's failure never blocks the rest
func (p *postLoop) check() {
	for _, guild := range cache.GetSession().State.Guilds {
		p.checkGuild(guild.ID)
	}
}

func (p *postLoop) checkGuild(guildID string) {
	defer helpers.Recover()

	settings, err := helpers.VidSettingsGet(guildID)
	if err != nil {
		logger().Warn("reading settings for guild ", guildID, " failed: ", err.Error())
		return
	}

	if !settings.Enabled || settings.PostChannelID == "" {
		return
	}

	interval := time.Duration(settings.PostIntervalMinutes) * time.Minute
	if time.Since(settings.LastPostTime) < interval {
		return
	}

	err = p.post(guildID)
	if err != nil {
		logger().Warn("posting for guild ", guildID, " failed: ", err.Error())
	}
}

// draw runs one channel+video selection under the rng lock. The loop
// goroutine and the force command share the generator, rand.Rand is not
// safe for concurrent use.
func (p *postLoop) draw(s models.VidChooseSettings) (index int, videoID string) {
	p.rngLock.Lock()
	defer p.rngLock.Unlock()

	index = pickChannel(s.Channels, p.rng)
	if index < 0 {
		return -1, ""
	}

	return index, pickVideo(s.Channels[index].VideoIDs, s.LastVideos, p.rng)
}

// post runs one selection and sends the result. Used by the loop and by
// the force command. History and timestamp are recorded through the
// transactional settings update so a concurrent command can't lose them.
func (p *postLoop) post(guildID string) error {
	var postedChannel, postedVideo string

	settings, err := helpers.VidSettingsUpdate(guildID, func(s models.VidChooseSettings) (models.VidChooseSettings, error) {
		index, videoID := p.draw(s)
		if index < 0 {
			return s, fmt.Errorf("no qualifying channel in the catalog")
		}

		entry := s.Channels[index]
		if videoID == "" {
			return s, fmt.Errorf("channel %s has no videos", entry.ChannelID)
		}

		postedChannel = entry.ChannelID
		postedVideo = videoID

		s.LastChannels = recordHistory(s.LastChannels, entry.ChannelID, s.ChannelHistorySize)
		s.LastVideos = recordHistory(s.LastVideos, videoID, s.VideoHistorySize)
		s.LastPostTime = time.Now()

		return s, nil
	})
	if err != nil {
		return err
	}

	_, err = helpers.SendMessage(settings.PostChannelID, fmt.Sprintf(youtubeVideoBaseUrl, postedVideo))
	if err != nil {
		return err
	}

	metrics.VideosPosted.Add(1)

	logger().WithFields(logrus.Fields{
		"guild":   guildID,
		"channel": postedChannel,
		"video":   postedVideo,
	}).Info("posted video")

	return nil
}
