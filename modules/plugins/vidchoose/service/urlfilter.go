package service

import "regexp"

// urlfilter is the pattern layer of identifier resolution. It never touches
// the network, it only decides what kind of reference a user-supplied string
// is so the caller knows which api lookup (if any) is needed.
type urlfilter struct {
	literalChannelID *regexp.Regexp
	channelURL       *regexp.Regexp
	handleURL        *regexp.Regexp
	customURL        *regexp.Regexp
	videoPatterns    []*regexp.Regexp
}

// ChannelRefKind says how a channel reference still needs to be resolved
type ChannelRefKind int

const (
	// ChannelRefID is a canonical UC id, no lookup needed
	ChannelRefID ChannelRefKind = iota
	// ChannelRefHandle needs a channels.list forHandle lookup
	ChannelRefHandle
	// ChannelRefName needs a search.list lookup
	ChannelRefName
)

type ChannelRef struct {
	Kind  ChannelRefKind
	Value string
}

const (
	literalChannelIDPattern = `^UC[A-Za-z0-9_-]{22}$`
	channelURLPattern       = `(?:https?://)?(?:www\.|m\.)?youtube\.com/channel/(UC[A-Za-z0-9_-]{22})`
	handleURLPattern        = `(?:https?://)?(?:www\.|m\.)?youtube\.com/@([A-Za-z0-9._-]+)`
	customURLPattern        = `(?:https?://)?(?:www\.|m\.)?youtube\.com/(?:c|user)/([A-Za-z0-9._-]+)`

	videoWatchPattern = `(?:https?://)?(?:www\.|m\.)?youtube\.com/watch\?(?:.*&)?v=([A-Za-z0-9_-]{11})`
	videoShortPattern = `(?:https?://)?youtu\.be/([A-Za-z0-9_-]{11})`
	videoEmbedPattern = `(?:https?://)?(?:www\.|m\.)?youtube\.com/(?:embed|v|shorts)/([A-Za-z0-9_-]{11})`
	videoIDPattern    = `^([A-Za-z0-9_-]{11})$`
)

func newUrlFilter() *urlfilter {
	return &urlfilter{
		literalChannelID: regexp.MustCompile(literalChannelIDPattern),
		channelURL:       regexp.MustCompile(channelURLPattern),
		handleURL:        regexp.MustCompile(handleURLPattern),
		customURL:        regexp.MustCompile(customURLPattern),
		videoPatterns: []*regexp.Regexp{
			regexp.MustCompile(videoWatchPattern),
			regexp.MustCompile(videoShortPattern),
			regexp.MustCompile(videoEmbedPattern),
			regexp.MustCompile(videoIDPattern),
		},
	}
}

// ParseChannelRef classifies $input. Bare @handles and bare tokens get the
// handle and name kinds, everything unrecognizable falls through to a
// search by name.
func (f *urlfilter) ParseChannelRef(input string) ChannelRef {
	if f.literalChannelID.MatchString(input) {
		return ChannelRef{Kind: ChannelRefID, Value: input}
	}

	if match := f.channelURL.FindStringSubmatch(input); match != nil {
		return ChannelRef{Kind: ChannelRefID, Value: match[1]}
	}

	if match := f.handleURL.FindStringSubmatch(input); match != nil {
		return ChannelRef{Kind: ChannelRefHandle, Value: match[1]}
	}

	if len(input) > 1 && input[0] == '@' {
		return ChannelRef{Kind: ChannelRefHandle, Value: input[1:]}
	}

	if match := f.customURL.FindStringSubmatch(input); match != nil {
		return ChannelRef{Kind: ChannelRefName, Value: match[1]}
	}

	return ChannelRef{Kind: ChannelRefName, Value: input}
}

// ExtractVideoID pulls the 11-char video id out of the known url shapes,
// or accepts a bare id
func (f *urlfilter) ExtractVideoID(input string) (id string, ok bool) {
	for _, pattern := range f.videoPatterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1], true
		}
	}

	return "", false
}
