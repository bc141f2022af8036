package service

import (
	"sync"
	"time"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/metrics"
	"github.com/Vect0r2/manuelbot/models"
	redisCache "github.com/go-redis/cache"
)

type quota struct {
	data models.YoutubeQuota

	sync.Mutex
}

const (
	dailyQuotaLimit        int64 = 10000
	searchQuotaCost        int64 = 100
	channelsQuotaCost      int64 = 7
	videosQuotaCost        int64 = 7
	playlistItemsQuotaCost int64 = 3
)

// Init seeds the ledger, keeping what redis remembers from before the
// restart when the reset boundary hasn't passed yet
func (q *quota) Init() (err error) {
	q.Lock()
	defer q.Unlock()

	q.data.Daily = dailyQuotaLimit
	q.data.Left = dailyQuotaLimit
	q.data.ResetTime = q.calcResetTime().Unix()

	oldQuota := q.get()
	if q.data.ResetTime <= oldQuota.ResetTime {
		q.data.Left = oldQuota.Left
	}

	return q.set()
}

func (q *quota) Get() models.YoutubeQuota {
	q.Lock()
	defer q.Unlock()

	q.rolloverIfDue()

	return q.data
}

// Sub spends $i units, rolling the ledger over first when the daily
// reset has passed. Returns the remaining quota, -1 when exhausted.
func (q *quota) Sub(i int64) int64 {
	q.Lock()
	defer q.Unlock()

	q.rolloverIfDue()

	metrics.YoutubeQuotaSpent.Add(i)

	if q.data.Left < i {
		return -1
	}

	q.data.Left -= i
	q.set()

	return q.data.Left
}

func (q *quota) DailyLimitExceeded() {
	q.Lock()
	defer q.Unlock()

	q.data.Left = 0
	q.set()
}

func (q *quota) rolloverIfDue() {
	if time.Now().Unix() > q.data.ResetTime {
		q.data.ResetTime = q.calcResetTime().Unix()
		q.data.Left = dailyQuotaLimit
	}
}

// get reads the previous quota information from redis.
// If that fails, returns a zero filled quota.
func (q *quota) get() models.YoutubeQuota {
	var savedQuota models.YoutubeQuota
	if err := cache.GetRedisCacheCodec().Get(models.VidChooseQuotaRedisKey, &savedQuota); err != nil {
		return models.YoutubeQuota{}
	}

	return savedQuota
}

func (q *quota) set() error {
	return cache.GetRedisCacheCodec().Set(&redisCache.Item{
		Key:        models.VidChooseQuotaRedisKey,
		Object:     q.data,
		Expiration: time.Hour * 24,
	})
}

func (q *quota) calcResetTime() time.Time {
	now := time.Now()
	localZone := now.Location()

	// Youtube quota resets at midnight pacific time
	pacific, err := time.LoadLocation("America/Los_Angeles")
	if err == nil {
		now = now.In(pacific)
	} else {
		cache.GetLogger().Error(err)
	}

	y, m, d := now.Date()
	resetTime := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())

	return resetTime.In(localZone)
}
