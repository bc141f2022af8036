package cache

import "sync"

var (
	pluginListMutex sync.RWMutex
	pluginList      []string
)

func SetPluginList(list []string) {
	pluginListMutex.Lock()
	defer pluginListMutex.Unlock()

	pluginList = list
}

func GetPluginList() []string {
	pluginListMutex.RLock()
	defer pluginListMutex.RUnlock()

	return pluginList
}
