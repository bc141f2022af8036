package vidchoose

import (
	"errors"
	"time"

	"github.com/Vect0r2/manuelbot/models"
	"github.com/Vect0r2/manuelbot/modules/plugins/vidchoose/service"
)

var errChannelNotFound = errors.New("plugins.vidchoose.channel-not-found")

// fetchChannelEntry builds a catalog entry for $channelID: channel metadata
// plus up to channelVideoLimit uploads, shorts dropped unless enabled.
func (h *Handler) fetchChannelEntry(channelID string, includeShorts bool) (models.VidChannelEntry, error) {
	var entry models.VidChannelEntry

	channel, err := h.service.GetChannelByID(channelID)
	if err != nil {
		return entry, err
	}
	if channel == nil {
		return entry, errChannelNotFound
	}

	uploadsPlaylist := ""
	if channel.ContentDetails != nil && channel.ContentDetails.RelatedPlaylists != nil {
		uploadsPlaylist = channel.ContentDetails.RelatedPlaylists.Uploads
	}
	if uploadsPlaylist == "" {
		return entry, errChannelNotFound
	}

	videoIDs, err := h.service.GetPlaylistVideoIDs(uploadsPlaylist, channelVideoLimit)
	if err != nil {
		return entry, err
	}

	if !includeShorts {
		videoIDs, err = h.dropShorts(videoIDs)
		if err != nil {
			return entry, err
		}
	}

	entry = models.VidChannelEntry{
		ChannelID:   channelID,
		Name:        channel.Snippet.Title,
		Weight:      1,
		VideoIDs:    videoIDs,
		LastUpdated: time.Now(),
	}

	return entry, nil
}

// dropShorts filters out videos of sixty seconds or less. Videos the api
// no longer returns metadata for are dropped as well.
func (h *Handler) dropShorts(videoIDs []string) ([]string, error) {
	videos, err := h.service.GetVideos(videoIDs)
	if err != nil {
		return nil, err
	}

	kept := make([]string, 0, len(videos))
	for _, video := range videos {
		if video.ContentDetails == nil || service.IsShort(video.ContentDetails.Duration) {
			continue
		}
		kept = append(kept, video.Id)
	}

	return kept, nil
}

// refreshChannels re-ingests the given catalog entries in place,
// returning how many updated and how many failed. Single-video pseudo
// channels are skipped, they have nothing to refresh.
func (h *Handler) refreshChannels(settings *models.VidChooseSettings, only string) (updated int, failed int) {
	for i := range settings.Channels {
		if settings.Channels[i].IsSingle {
			continue
		}
		if only != "" && settings.Channels[i].ChannelID != only {
			continue
		}

		entry, err := h.fetchChannelEntry(settings.Channels[i].ChannelID, settings.ShortsEnabled)
		if err != nil {
			logger().Warn("refresh failed for channel ", settings.Channels[i].ChannelID, ": ", err.Error())
			failed++
			continue
		}

		settings.Channels[i].Name = entry.Name
		settings.Channels[i].VideoIDs = entry.VideoIDs
		settings.Channels[i].LastUpdated = entry.LastUpdated
		updated++
	}

	return updated, failed
}
