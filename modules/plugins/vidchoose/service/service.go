package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/models"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtubeAPI "google.golang.org/api/youtube/v3"
)

// Service wraps the youtube data api with api-key auth and quota accounting.
type Service struct {
	service *youtubeAPI.Service
	quota   quota
	filter  *urlfilter

	sync.RWMutex
}

const apiKeyRedisKey = "manuelbot:vidchoose:youtube-api-key"

var ErrServiceNotAvailable = errors.New("plugins.vidchoose.service-not-available")

// Init builds the youtube client from the configured api key, falling back
// to a key stored at runtime via SetAPIKey. Fails soft when no key is set,
// every call then returns ErrServiceNotAvailable.
func (s *Service) Init(configPath string) {
	s.Lock()
	defer s.Unlock()

	s.service = nil
	s.filter = newUrlFilter()

	apiKey := helpers.ConfigString(configPath)
	if apiKey == "" {
		apiKey, _ = cache.GetRedisClient().Get(apiKeyRedisKey).Result()
	}
	if apiKey == "" {
		cache.GetLogger().WithField("module", "vidchoose").Warn("no youtube api key configured, lookups are disabled")
		return
	}

	s.initWithKey(apiKey)
}

// SetAPIKey stores a new api key and rebuilds the client with it
func (s *Service) SetAPIKey(apiKey string) error {
	err := cache.GetRedisClient().Set(apiKeyRedisKey, apiKey, 0).Err()
	if err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()

	s.initWithKey(apiKey)
	return nil
}

func (s *Service) initWithKey(apiKey string) {
	svc, err := youtubeAPI.NewService(context.Background(), option.WithAPIKey(apiKey))
	helpers.Relax(err)
	s.service = svc

	err = s.quota.Init()
	helpers.Relax(err)
}

// Available reports whether the youtube client is usable
func (s *Service) Available() bool {
	s.RLock()
	defer s.RUnlock()

	return s.service != nil
}

// Filter exposes the url pattern layer
func (s *Service) Filter() *urlfilter {
	s.RLock()
	defer s.RUnlock()

	if s.filter == nil {
		return newUrlFilter()
	}
	return s.filter
}

// GetChannelByID returns the channel for a literal UC id.
// Returns (nil, nil) when no channel matches.
func (s *Service) GetChannelByID(channelID string) (*youtubeAPI.Channel, error) {
	s.RLock()
	defer s.RUnlock()

	if s.service == nil {
		return nil, ErrServiceNotAvailable
	}

	s.quota.Sub(channelsQuotaCost)

	response, err := s.service.Channels.List([]string{"snippet", "contentDetails"}).
		Id(channelID).
		MaxResults(1).
		Do()
	if err != nil {
		return nil, s.handleGoogleAPIError(err)
	}

	if len(response.Items) < 1 {
		return nil, nil
	}

	return response.Items[0], nil
}

// GetChannelByHandle resolves an @handle to its channel.
// Returns (nil, nil) when no channel matches.
func (s *Service) GetChannelByHandle(handle string) (*youtubeAPI.Channel, error) {
	s.RLock()
	defer s.RUnlock()

	if s.service == nil {
		return nil, ErrServiceNotAvailable
	}

	s.quota.Sub(channelsQuotaCost)

	response, err := s.service.Channels.List([]string{"snippet", "contentDetails"}).
		ForHandle(handle).
		MaxResults(1).
		Do()
	if err != nil {
		return nil, s.handleGoogleAPIError(err)
	}

	if len(response.Items) < 1 {
		return nil, nil
	}

	return response.Items[0], nil
}

// SearchChannelID finds a channel id by free-form name.
// Returns ("", nil) when the search comes back empty.
func (s *Service) SearchChannelID(query string) (string, error) {
	s.RLock()
	defer s.RUnlock()

	if s.service == nil {
		return "", ErrServiceNotAvailable
	}

	s.quota.Sub(searchQuotaCost)

	response, err := s.service.Search.List([]string{"snippet"}).
		Type("channel").
		MaxResults(1).
		Q(query).
		Do()
	if err != nil {
		return "", s.handleGoogleAPIError(err)
	}

	if len(response.Items) < 1 {
		return "", nil
	}

	// Very few channels only have snippet.ChannelID
	// Maybe it's youtube API bug.
	channelID := response.Items[0].Id.ChannelId
	if channelID == "" {
		channelID = response.Items[0].Snippet.ChannelId
	}

	return channelID, nil
}

// GetPlaylistVideoIDs pages through a playlist and returns up to $limit
// video ids, newest first as the api delivers them.
func (s *Service) GetPlaylistVideoIDs(playlistID string, limit int) ([]string, error) {
	s.RLock()
	defer s.RUnlock()

	if s.service == nil {
		return nil, ErrServiceNotAvailable
	}

	videoIDs := make([]string, 0)
	pageToken := ""

	for len(videoIDs) < limit {
		s.quota.Sub(playlistItemsQuotaCost)

		call := s.service.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(50)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, s.handleGoogleAPIError(err)
		}

		for _, item := range response.Items {
			if len(videoIDs) >= limit {
				break
			}
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return videoIDs, nil
}

// GetVideos fetches snippet and duration info for a set of video ids,
// batched by the api's 50-id limit. Unknown ids are silently absent.
func (s *Service) GetVideos(videoIDs []string) ([]*youtubeAPI.Video, error) {
	s.RLock()
	defer s.RUnlock()

	if s.service == nil {
		return nil, ErrServiceNotAvailable
	}

	videos := make([]*youtubeAPI.Video, 0, len(videoIDs))

	for start := 0; start < len(videoIDs); start += 50 {
		end := start + 50
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		s.quota.Sub(videosQuotaCost)

		response, err := s.service.Videos.List([]string{"snippet", "contentDetails"}).
			Id(videoIDs[start:end]...).
			Do()
		if err != nil {
			return nil, s.handleGoogleAPIError(err)
		}

		videos = append(videos, response.Items...)
	}

	return videos, nil
}

// GetVideoSingle returns one video, (nil, nil) when it doesn't exist
func (s *Service) GetVideoSingle(videoID string) (*youtubeAPI.Video, error) {
	videos, err := s.GetVideos([]string{videoID})
	if err != nil {
		return nil, err
	}

	if len(videos) < 1 {
		return nil, nil
	}

	return videos[0], nil
}

// Quota returns a snapshot of the quota ledger
func (s *Service) Quota() models.YoutubeQuota {
	return s.quota.Get()
}

func (s *Service) handleGoogleAPIError(err error) error {
	if gerr, ok := err.(*googleapi.Error); ok && gerr.Code == 403 {
		s.quota.DailyLimitExceeded()
		return errors.New("plugins.vidchoose.daily-limit-exceeded")
	}

	return err
}
