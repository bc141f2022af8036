package plugins

import (
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/version"
	"github.com/bwmarrin/discordgo"
)

type About struct{}

func (a *About) Commands() []string {
	return []string{
		"about",
		"info",
	}
}

func (a *About) Init(session *discordgo.Session) {

}

func (a *About) Action(command string, content string, msg *discordgo.Message, session *discordgo.Session) {
	m := helpers.GetText("plugins.about.intro") + "\n"
	m += "I post videos from a curated youtube catalog and keep channels tidy on a schedule.\n"
	m += "Version: `" + version.BOT_VERSION + "` built " + version.BUILD_TIME + "\n"
	m += "I'm open-source and built using the Go programming language."

	_, err := helpers.SendMessage(msg.ChannelID, m)
	helpers.RelaxLog(err)
}
