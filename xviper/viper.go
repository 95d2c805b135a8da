// Package xviper wraps viper with a lazily loaded, persisted configuration
// file under the tool home. Writes go back to disk immediately so that
// identity and counters survive between runs.
package xviper

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"github.com/sbomweld/sbomweld/common"
)

const homeVariable = `SBOMWELD_HOME`

type config struct {
	sync.Mutex
	instance *viper.Viper
	location string
	loaded   bool
}

var registry = &config{}

// Home is the directory for persisted tool state. Override with SBOMWELD_HOME.
func Home() string {
	if value := os.Getenv(homeVariable); len(value) > 0 {
		return value
	}
	return filepath.Join(common.UserHomeIdentity(), ".sbomweld")
}

// SetConfigFile points the registry at an explicit file before first use.
func SetConfigFile(location string) {
	registry.Lock()
	defer registry.Unlock()
	registry.location = location
	registry.instance = nil
	registry.loaded = false
}

func (it *config) summon() *viper.Viper {
	if it.loaded {
		return it.instance
	}
	if len(it.location) == 0 {
		it.location = filepath.Join(Home(), "sbomweld.json")
	}
	it.instance = viper.New()
	it.instance.SetConfigFile(it.location)
	if err := it.instance.ReadInConfig(); err != nil {
		common.Trace("Could not read config %q, reason: %v", it.location, err)
	}
	it.loaded = true
	return it.instance
}

func (it *config) save() {
	if err := os.MkdirAll(filepath.Dir(it.location), 0o755); err != nil {
		common.Uncritical("config save", err)
		return
	}
	if err := it.instance.WriteConfigAs(it.location); err != nil {
		common.Uncritical("config save", err)
	}
}

func Set(key string, value interface{}) {
	registry.Lock()
	defer registry.Unlock()
	registry.summon().Set(key, value)
	registry.save()
}

func GetString(key string) string {
	registry.Lock()
	defer registry.Unlock()
	return registry.summon().GetString(key)
}

func GetInt(key string) int {
	registry.Lock()
	defer registry.Unlock()
	return registry.summon().GetInt(key)
}

func GetBool(key string) bool {
	registry.Lock()
	defer registry.Unlock()
	return registry.summon().GetBool(key)
}

func ConfigFileUsed() string {
	registry.Lock()
	defer registry.Unlock()
	registry.summon()
	return registry.location
}
