package vidchoose

import (
	"github.com/Vect0r2/manuelbot/modules/plugins/vidchoose/service"
)

// resolveChannelID maps free-form user input (literal id, channel url,
// handle, custom url, bare name) to a canonical UC channel id.
// Returns ("", nil) when nothing matches, a non-nil error only on api
// failure, so callers can tell "not found" from "try again later".
func (h *Handler) resolveChannelID(input string) (string, error) {
	ref := h.service.Filter().ParseChannelRef(input)

	switch ref.Kind {
	case service.ChannelRefID:
		return ref.Value, nil

	case service.ChannelRefHandle:
		channel, err := h.service.GetChannelByHandle(ref.Value)
		if err != nil {
			return "", err
		}
		if channel == nil {
			return "", nil
		}
		return channel.Id, nil

	default:
		return h.service.SearchChannelID(ref.Value)
	}
}

// resolveVideoID extracts a canonical video id from user input,
// "" when the input doesn't look like a video reference
func (h *Handler) resolveVideoID(input string) string {
	id, ok := h.service.Filter().ExtractVideoID(input)
	if !ok {
		return ""
	}
	return id
}
