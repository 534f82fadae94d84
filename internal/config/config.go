// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Default values applied when the corresponding environment variable is unset.
const (
	DefaultRepository = "oss-wishlist/wishlists"
	DefaultBotLogin   = "github-actions[bot]"
	DefaultOutputPath = "data/wishlists-cache.json"
)

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub   GitHubConfig
	Wishlist WishlistConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token  string
	Domain string
}

// WishlistConfig holds wishlist pipeline specific configuration.
type WishlistConfig struct {
	// Repository is the "owner/repo" slug hosting the wishlist issues.
	Repository string

	// BotLogin is the login of the automated participant that posts
	// resubmitted issue forms as comments.
	BotLogin string

	// OutputPath is where the cache document is written.
	OutputPath string
}

// LoadConfig initializes and loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	// Initialize Viper for environment variables
	v := viper.New()
	v.SetEnvPrefix("")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Map specific environment variables
	v.BindEnv("github.token", "GITHUB_TOKEN")
	v.BindEnv("github.domain", "GITHUB_DOMAIN")
	v.BindEnv("wishlist.repository", "WISHLIST_REPOSITORY")
	v.BindEnv("wishlist.bot_login", "WISHLIST_BOT_LOGIN")
	v.BindEnv("wishlist.output", "WISHLIST_OUTPUT")

	v.SetDefault("wishlist.repository", DefaultRepository)
	v.SetDefault("wishlist.bot_login", DefaultBotLogin)
	v.SetDefault("wishlist.output", DefaultOutputPath)

	// Create config structure
	config := &Config{
		GitHub: GitHubConfig{
			Token:  v.GetString("github.token"),
			Domain: v.GetString("github.domain"),
		},
		Wishlist: WishlistConfig{
			Repository: v.GetString("wishlist.repository"),
			BotLogin:   v.GetString("wishlist.bot_login"),
			OutputPath: v.GetString("wishlist.output"),
		},
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig ensures that all required configuration values are provided.
func validateConfig(config *Config) error {
	var missingVars []string

	if config.GitHub.Token == "" {
		missingVars = append(missingVars, "GITHUB_TOKEN")
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %v", missingVars)
	}

	if !strings.Contains(config.Wishlist.Repository, "/") {
		return fmt.Errorf("invalid WISHLIST_REPOSITORY %q, expected format: owner/repo", config.Wishlist.Repository)
	}

	return nil
}
