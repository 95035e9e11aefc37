package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init wires up defaults, environment overrides and the optional
// settings file. Call once at startup; later calls return the first
// result.
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("MLDRUMMER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing file is fine; defaults and env still apply.
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
			}
		}
	})

	return initErr
}

func setDefaults() {
	viper.SetDefault("pack.sample_rate", 44100)
	viper.SetDefault("pack.normalize", true)
	viper.SetDefault("pack.max_length_ms", 0)
	viper.SetDefault("flash.address", uint32(0x10200000))
}

// SampleRate is the default bank sample rate in Hz.
func SampleRate() uint32 { return viper.GetUint32("pack.sample_rate") }

// Normalize is the default peak-normalization setting.
func Normalize() bool { return viper.GetBool("pack.normalize") }

// MaxLengthMS is the default clip length bound; zero means unlimited.
func MaxLengthMS() int { return viper.GetInt("pack.max_length_ms") }

// FlashAddress is the default flash load address for generated
// artifacts.
func FlashAddress() uint32 { return viper.GetUint32("flash.address") }
