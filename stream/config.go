package stream

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v2"
)

// Default configuration values applied after decoding.
const (
	DefaultBrokerURL = "tcp://localhost:1883"
	DefaultClientID  = "tempo-stream"
	DefaultTopic     = "tempo"
	DefaultTickRate  = 60.0
	DefaultAPIAddr   = ":8080"
	DefaultLogLevel  = "info"
)

// ErrInvalidQoS is returned when the configured MQTT QoS is not 0, 1 or 2.
var ErrInvalidQoS = errors.New("stream: qos must be 0, 1 or 2")

// Config is the streaming daemon configuration file layout.
type Config struct {
	Mqtt   MQTTConfig   `yaml:"mqtt"`
	Driver DriverConfig `yaml:"driver"`
	API    APIConfig    `yaml:"api"`
	Log    LogConfig    `yaml:"log"`
}

// MQTTConfig holds the broker connection and the topic prefix resolved
// states are published under.
type MQTTConfig struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientID"`
	Topic    string `yaml:"topic"`
	QoS      byte   `yaml:"qos"`
}

// DriverConfig controls the tick loop.
type DriverConfig struct {
	// TickRate is the number of root updates per second.
	TickRate float64 `yaml:"tickRate"`
}

// APIConfig controls the HTTP control surface.
type APIConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig selects the daemon log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SlogLevel parses Level.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("stream: log level %q: %w", c.Level, err)
	}
	return l, nil
}

// LoadConfig reads a YAML config file and applies defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("stream: open config: %w", err)
	}
	defer f.Close()
	return ParseConfig(f)
}

// ParseConfig decodes YAML from r and applies defaults. An empty document
// yields the default configuration.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("stream: decode config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Mqtt.URL == "" {
		c.Mqtt.URL = DefaultBrokerURL
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = DefaultClientID
	}
	if c.Mqtt.Topic == "" {
		c.Mqtt.Topic = DefaultTopic
	}
	if !(c.Driver.TickRate > 0) {
		c.Driver.TickRate = DefaultTickRate
	}
	if c.API.Addr == "" {
		c.API.Addr = DefaultAPIAddr
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

func (c *Config) validate() error {
	if c.Mqtt.QoS > 2 {
		return ErrInvalidQoS
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}
