package cli

import (
	"fmt"

	"github.com/postalsys/tuntap/internal/config"
	"github.com/postalsys/tuntap/internal/link"
)

// loadConfig loads the config file if one was given, otherwise returns
// the built-in defaults.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyOverrides copies the flag values the user actually set over the
// loaded config; changed reports whether a flag was given explicitly.
func applyOverrides(cfg *config.Config, opts openOptions, changed func(string) bool) {
	if changed("name") {
		cfg.Device.Name = opts.Name
	}
	if changed("mode") {
		cfg.Device.Mode = opts.Mode
	}
	if changed("packet-info") {
		cfg.Device.PacketInfo = opts.PacketInfo
	}
	if changed("mtu") {
		cfg.Link.MTU = opts.MTU
	}
	if changed("address") {
		cfg.Link.Address = opts.Address
	}
	if changed("address6") {
		cfg.Link.Address6 = opts.Address6
	}
	if changed("up") {
		cfg.Link.Up = opts.Up
	}
}

// linkSettings extracts the post-creation link settings from the config.
func linkSettings(cfg *config.Config) link.Settings {
	return link.Settings{
		MTU:      cfg.Link.MTU,
		Address:  cfg.Link.Address,
		Address6: cfg.Link.Address6,
		Up:       cfg.Link.Up,
	}
}
