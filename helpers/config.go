package helpers

import "github.com/Jeffail/gabs"

// config saves the bot-config
var config *gabs.Container

// DEBUG_MODE enables verbose logging, set by the launcher flag
var DEBUG_MODE bool

// LoadConfig loads the config from $path into $config
func LoadConfig(path string) {
	json, err := gabs.ParseJSONFile(path)

	if err != nil {
		panic(err)
	}

	config = json
}

// GetConfig is a config getter
func GetConfig() *gabs.Container {
	return config
}

// ConfigString reads a string value at $path, returning "" when unset.
func ConfigString(path string) string {
	if config == nil || !config.ExistsP(path) {
		return ""
	}

	value, ok := config.Path(path).Data().(string)
	if !ok {
		return ""
	}

	return value
}
