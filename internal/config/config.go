package config

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/notceiph/whisprin/dsp/spectrum"
)

// EnvPrefix namespaces environment overrides, e.g. PENCIL_SAMPLE_RATE.
const EnvPrefix = "PENCIL"

const (
	DefaultDuration   = 0.5
	DefaultSampleRate = 44100
	DefaultOutputDir  = "../src/Artisense.UI/Assets"
	DefaultFileName   = "pencil_loop.wav"
	DefaultFFTBackend = string(spectrum.BackendAlgoFFT)
)

// Config holds the generator parameters.
type Config struct {
	Duration   float64 // seconds
	SampleRate int
	OutputDir  string
	FileName   string
	FFTBackend string

	// Seed pins the noise source when Seeded is set.
	Seed   uint64
	Seeded bool
}

// OutputPath is where the loop is written.
func (c *Config) OutputPath() string {
	return filepath.Join(c.OutputDir, c.FileName)
}

// ConfigManager resolves and holds the generator configuration.
type ConfigManager struct {
	v      *viper.Viper
	config *Config
}

// NewConfigManager resolves the configuration from built-in defaults, the
// optional YAML file at configPath and PENCIL_* environment variables, in
// increasing order of precedence.
func NewConfigManager(configPath string) (*ConfigManager, error) {
	v := viper.New()

	v.SetDefault("duration", DefaultDuration)
	v.SetDefault("sample_rate", DefaultSampleRate)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("file_name", DefaultFileName)
	v.SetDefault("fft_backend", DefaultFFTBackend)

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cm := &ConfigManager{v: v}
	cm.loadConfig()

	return cm, nil
}

func (cm *ConfigManager) loadConfig() {
	cm.config = &Config{
		Duration:   cm.v.GetFloat64("duration"),
		SampleRate: cm.v.GetInt("sample_rate"),
		OutputDir:  cm.v.GetString("output_dir"),
		FileName:   cm.v.GetString("file_name"),
		FFTBackend: cm.v.GetString("fft_backend"),
	}
	if cm.v.IsSet("seed") {
		cm.config.Seed = cm.v.GetUint64("seed")
		cm.config.Seeded = true
	}
}

// GetConfig returns the resolved configuration.
func (cm *ConfigManager) GetConfig() *Config {
	return cm.config
}

// ConfigFile returns the file the configuration was read from, if any.
func (cm *ConfigManager) ConfigFile() string {
	return cm.v.ConfigFileUsed()
}

// Validate reports the first parameter that cannot produce a loop.
func (c *Config) Validate() error {
	if math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("duration must be finite: %v", c.Duration)
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be >= 0: %v", c.Duration)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be > 0: %d", c.SampleRate)
	}
	if c.FileName == "" {
		return fmt.Errorf("file_name is required")
	}
	if filepath.Base(c.FileName) != c.FileName {
		return fmt.Errorf("file_name must not contain a directory: %s", c.FileName)
	}
	if _, err := spectrum.ParseBackend(c.FFTBackend); err != nil {
		return fmt.Errorf("fft_backend: %w", err)
	}
	return nil
}
