package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Loader owns the viper instance so flags can be bound before Read
type Loader struct {
	*viper.Viper
}

func NewLoader() *Loader {
	loader := Loader{Viper: viper.New()}
	def := Default()
	loader.SetDefault("tick_rate", def.TickRate)
	loader.SetDefault("mouse", def.Mouse)
	loader.SetDefault("audio.enabled", def.Audio.Enabled)
	loader.SetDefault("audio.volume", def.Audio.Volume)
	loader.SetDefault("audio.frequency", def.Audio.Frequency)
	loader.SetDefault("audio.duration", def.Audio.Duration)
	loader.SetDefault("log.debug", def.Log.Debug)
	loader.SetDefault("log.level", def.Log.Level)
	loader.SetDefault("log.file", def.Log.File)
	loader.SetEnvPrefix(EnvPrefix)
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	return &loader
}

// Read loads path, or the default config file when path is empty. A missing
// default file is not an error; a missing explicit file is.
func (cl *Loader) Read(path string) (Config, error) {
	if path != "" {
		cl.SetConfigFile(path)
	} else {
		cl.SetConfigName(DefaultConfigName)
		cl.AddConfigPath(Dir())
		cl.AddConfigPath(".")
	}

	if err := cl.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Path returns the config file in use, empty when running on defaults
func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Load reads configuration without flag bindings
func Load(path string) (Config, error) {
	return NewLoader().Read(path)
}
