package modules

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Vect0r2/manuelbot/cache"
	"github.com/Vect0r2/manuelbot/helpers"
	"github.com/Vect0r2/manuelbot/metrics"
	"github.com/Vect0r2/manuelbot/ratelimits"
	"github.com/bwmarrin/discordgo"
)

// Init warms the caches and initializes the plugins
func Init(session *discordgo.Session) {
	checkDuplicateCommands()

	pluginCount := len(PluginList)
	pluginCache = make(map[string]*Plugin)

	logTemplate := "[PLUG] %s reacts to [ %s]"
	listeners := ""

	for i := 0; i < pluginCount; i++ {
		ref := &PluginList[i]

		for _, cmd := range (*ref).Commands() {
			pluginCache[cmd] = ref
			listeners += cmd + " "
		}

		cache.GetLogger().WithField("module", "modules").Info(fmt.Sprintf(
			logTemplate,
			helpers.Typeof(*ref),
			listeners,
		))
		listeners = ""

		(*ref).Init(session)
	}

	pluginCommands := make([]string, 0)
	for k := range pluginCache {
		pluginCommands = append(pluginCommands, k)
	}
	cache.SetPluginList(pluginCommands)

	cache.GetLogger().WithField("module", "modules").Info(
		"Initializer finished. Loaded " + strconv.Itoa(len(PluginList)) + " plugins",
	)
}

// CallBotPlugin routes a parsed command to the plugin that registered it
// command - The command that triggered this execution
// content - The content without command
// msg     - The message object
func CallBotPlugin(command string, content string, msg *discordgo.Message) {
	// Defer a recovery in case anything panics
	defer helpers.RecoverDiscord(msg)

	// Consume a key for this action
	ratelimits.Container.Drain(1, msg.Author.ID)

	// Track metrics
	metrics.CommandsExecuted.Add(1)

	// Call the module
	if ref, ok := pluginCache[command]; ok {
		(*ref).Action(command, content, msg, cache.GetSession())
	}
}

func checkDuplicateCommands() {
	cmds := make(map[string]string)

	for _, plug := range PluginList {
		for _, cmd := range plug.Commands() {
			t := helpers.Typeof(plug)

			if occupant, ok := cmds[cmd]; ok {
				cache.GetLogger().WithField("module", "modules").Info("Failed to load " + t + " because '" + cmd + "' was already registered by " + occupant)
				os.Exit(1)
			}

			cmds[cmd] = t
		}
	}
}
