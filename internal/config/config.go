package config

import (
	"fmt"
	"net"
	"os"

	"github.com/postalsys/tuntap/internal/tun"
	"gopkg.in/yaml.v3"
)

// Config is the main configuration structure
type Config struct {
	Device  DeviceConfig  `yaml:"device"`
	Link    LinkConfig    `yaml:"link"`
	Logging LoggingConfig `yaml:"logging"`
}

// DeviceConfig describes the TUN/TAP device to create
type DeviceConfig struct {
	Name       string `yaml:"name"`        // Interface name; empty for kernel auto-naming
	Mode       string `yaml:"mode"`        // "tun" or "tap"
	PacketInfo bool   `yaml:"packet_info"` // Keep the 4-byte kernel prefix on each packet
}

// LinkConfig holds settings applied to the interface after creation
type LinkConfig struct {
	MTU      int    `yaml:"mtu"`
	Address  string `yaml:"address"`  // IPv4 CIDR, e.g., "10.200.200.1/24"
	Address6 string `yaml:"address6"` // IPv6 CIDR, e.g., "fd00:200::1/64"
	Up       bool   `yaml:"up"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()
	return cfg, nil
}

// Default returns the configuration used when no config file is given
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// setDefaults applies default values to unset fields
func (c *Config) setDefaults() {
	if c.Device.Mode == "" {
		c.Device.Mode = "tun"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if _, err := tun.ParseMode(c.Device.Mode); err != nil {
		return err
	}

	if _, err := tun.EncodeName(c.Device.Name); err != nil {
		return fmt.Errorf("invalid device name %q: %w", c.Device.Name, err)
	}

	if c.Link.MTU < 0 {
		return fmt.Errorf("invalid MTU: %d", c.Link.MTU)
	}

	if c.Link.Address != "" {
		ip, _, err := net.ParseCIDR(c.Link.Address)
		if err != nil {
			return fmt.Errorf("invalid address: %w", err)
		}
		if ip.To4() == nil {
			return fmt.Errorf("address %s is not IPv4", c.Link.Address)
		}
	}

	if c.Link.Address6 != "" {
		ip, _, err := net.ParseCIDR(c.Link.Address6)
		if err != nil {
			return fmt.Errorf("invalid address6: %w", err)
		}
		if ip.To4() != nil {
			return fmt.Errorf("address6 %s is not IPv6", c.Link.Address6)
		}
	}

	return nil
}

// DeviceSettings converts the device section into a tun.Config. Call
// Validate first; an invalid mode falls back to TUN here.
func (c *Config) DeviceSettings() tun.Config {
	mode, _ := tun.ParseMode(c.Device.Mode)
	return tun.Config{
		Name:       c.Device.Name,
		Mode:       mode,
		PacketInfo: c.Device.PacketInfo,
	}
}
