package helpers

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/bwmarrin/discordgo"
)

var (
	botAdmins = []string{}

	channelMentionRegex = regexp.MustCompile(`^<#(\d+)>$`)

	ErrChannelNotFound = errors.New("channel not found")
)

// LoadBotAdmins reads the bot admin user IDs from the config
func LoadBotAdmins() {
	botAdmins = []string{}

	children, err := GetConfig().Path("discord.admins").Children()
	Relax(err)

	for _, child := range children {
		botAdmins = append(botAdmins, child.Data().(string))
	}
}

// IsBotAdmin checks if $id is in the bot admins list
func IsBotAdmin(id string) bool {
	for _, s := range botAdmins {
		if s == id {
			return true
		}
	}

	return false
}

// IsAdmin checks if $msg.Author is either the guild owner, has the
// administrator or manage-server permission, or is a bot admin.
func IsAdmin(msg *discordgo.Message) bool {
	channel, err := GetChannel(msg.ChannelID)
	if err != nil {
		return false
	}

	guild, err := GetGuild(channel.GuildID)
	if err != nil {
		return false
	}

	if msg.Author.ID == guild.OwnerID || IsBotAdmin(msg.Author.ID) {
		return true
	}

	perms, err := cache.GetSession().State.UserChannelPermissions(msg.Author.ID, msg.ChannelID)
	if err != nil {
		return false
	}
	if perms&discordgo.PermissionAdministrator > 0 || perms&discordgo.PermissionManageServer > 0 {
		return true
	}

	return false
}

// RequireAdmin only calls $cb if the author is an admin or has MANAGE_SERVER permission
func RequireAdmin(msg *discordgo.Message, cb Callback) {
	if !IsAdmin(msg) {
		_, err := SendMessage(msg.ChannelID, GetText("admin.no_permission"))
		RelaxLog(err)
		return
	}

	cb()
}

// GetChannel reads a channel from the state, falling back to the API
func GetChannel(channelID string) (*discordgo.Channel, error) {
	channel, err := cache.GetSession().State.Channel(channelID)
	if err == nil {
		return channel, nil
	}

	channel, err = cache.GetSession().Channel(channelID)
	if err == nil {
		return channel, nil
	}

	return nil, err
}

// GetGuild reads a guild from the state, falling back to the API
func GetGuild(guildID string) (*discordgo.Guild, error) {
	guild, err := cache.GetSession().State.Guild(guildID)
	if err == nil {
		return guild, nil
	}

	guild, err = cache.GetSession().Guild(guildID)
	if err == nil {
		return guild, nil
	}

	return nil, err
}

// GetChannelFromMention resolves a channel mention or ID in $guildID.
// Returns ErrChannelNotFound when the text doesn't name a channel of that guild.
func GetChannelFromMention(guildID string, mention string) (*discordgo.Channel, error) {
	channelID := mention
	if parts := channelMentionRegex.FindStringSubmatch(mention); parts != nil {
		channelID = parts[1]
	}
	if _, err := strconv.ParseUint(channelID, 10, 64); err != nil {
		return nil, ErrChannelNotFound
	}

	channel, err := GetChannel(channelID)
	if err != nil || channel.GuildID != guildID {
		return nil, ErrChannelNotFound
	}

	return channel, nil
}

// SendMessage sends a message to a channel, splitting it if it is too long
func SendMessage(channelID string, content string) (messages []*discordgo.Message, err error) {
	return SendComplex(channelID, &discordgo.MessageSend{Content: content})
}

// SendEmbed sends an embed to a channel
func SendEmbed(channelID string, embed *discordgo.MessageEmbed) (messages []*discordgo.Message, err error) {
	return SendComplex(channelID, &discordgo.MessageSend{Embed: embed})
}

// SendComplex sends a MessageSend object to a channel,
// pagifies the content if necessary
func SendComplex(channelID string, data *discordgo.MessageSend) (messages []*discordgo.Message, err error) {
	var pages []string
	if data.Content != "" {
		pages = Pagify(data.Content, "\n")
	} else {
		pages = []string{""}
	}

	for i, page := range pages {
		send := &discordgo.MessageSend{
			Content: page,
		}
		// attach the embed to the last page
		if i == len(pages)-1 {
			send.Embed = data.Embed
			send.TTS = data.TTS
			send.Files = data.Files
		}

		message, err := cache.GetSession().ChannelMessageSendComplex(channelID, send)
		if err != nil {
			return messages, err
		}
		messages = append(messages, message)
	}

	return messages, nil
}

// EditMessage edits a message, truncating the content if it is too long
func EditMessage(channelID string, messageID string, content string) (message *discordgo.Message, err error) {
	if len(content) > 2000 {
		content = content[:2000]
	}

	return cache.GetSession().ChannelMessageEdit(channelID, messageID, content)
}

// Pagify splits $text into pages of at most 1992 characters,
// breaking on $delimiter where possible
func Pagify(text string, delimiter string) (pages []string) {
	for _, line := range strings.Split(text, delimiter) {
		if len(pages) > 0 && len(pages[len(pages)-1])+len(line)+len(delimiter) <= 1992 {
			pages[len(pages)-1] += delimiter + line
			continue
		}

		for len(line) > 1992 {
			pages = append(pages, line[:1992])
			line = line[1992:]
		}
		pages = append(pages, line)
	}

	return pages
}

// GetDiscordColorFromHex converts a hex color string to the decimal
// representation discord embeds want
func GetDiscordColorFromHex(hex string) int {
	colorInt, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 64)
	if err == nil {
		return int(colorInt)
	}

	return 0x0FADED
}
