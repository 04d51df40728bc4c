package config

import (
	"context"
	"log"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch calls onChange with the reloaded config each time the config file is
// written. Invalid edits are logged and skipped. It returns false when no
// config file is in use. Changes arriving after ctx is done are dropped.
func Watch(ctx context.Context, v *viper.Viper, onChange func(Config)) bool {
	if v.ConfigFileUsed() == "" {
		return false
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if ctx.Err() != nil {
			return
		}
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c, err := decode(v)
		if err != nil {
			log.Printf("config.Watch: %s: %v", e.Name, err)
			return
		}
		onChange(c)
	})
	v.WatchConfig()
	return true
}
