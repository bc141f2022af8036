package modules

import (
	"github.com/Vect0r2/manuelbot/modules/plugins"
	"github.com/Vect0r2/manuelbot/modules/plugins/purge"
	"github.com/Vect0r2/manuelbot/modules/plugins/vidchoose"
)

var (
	pluginCache map[string]*Plugin

	PluginList = []Plugin{
		&plugins.About{},
		&plugins.Ping{},
		&plugins.Uptime{},
		&vidchoose.Handler{},
		&purge.Handler{},
	}
)
