package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration
type Config struct {
	TelegramToken string
	TMDBAPIKey    string
	AdminUserIDs  []int64

	// Chat capability (intent classification + chit-chat)
	EnableChat   bool
	OpenAIAPIKey string

	// Channel-subscription gate
	RequireSubscription bool
	ChannelUsername     string

	// Bot mode configuration
	WebhookMode bool   // If true, use webhook mode; if false, use polling mode
	WebhookURL  string // URL for webhook (required if WebhookMode is true)

	// User directory storage
	SQLitePath string
	UseMockDB  bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	config := &Config{}

	// Telegram Bot Token (required)
	config.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	// TMDb API key (required)
	config.TMDBAPIKey = os.Getenv("TMDB_API_KEY")
	if config.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}

	// Admin user IDs for the /stats report (optional; empty disables /stats)
	if adminIDsStr := os.Getenv("ADMIN_USER_IDS"); adminIDsStr != "" {
		for _, idStr := range strings.Split(adminIDsStr, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid user ID in ADMIN_USER_IDS: %s", idStr)
			}
			config.AdminUserIDs = append(config.AdminUserIDs, id)
		}
	}

	// Chat capability
	config.EnableChat = os.Getenv("ENABLE_CHAT") == "true"
	if config.EnableChat {
		config.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
		if config.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when ENABLE_CHAT is true")
		}
	}

	// Channel-subscription gate
	config.RequireSubscription = os.Getenv("REQUIRE_SUBSCRIPTION") == "true"
	if config.RequireSubscription {
		config.ChannelUsername = os.Getenv("CHANNEL_USERNAME")
		if config.ChannelUsername == "" {
			return nil, fmt.Errorf("CHANNEL_USERNAME is required when REQUIRE_SUBSCRIPTION is true")
		}
	}

	// Bot mode configuration
	config.WebhookMode = os.Getenv("WEBHOOK_MODE") == "true"
	if config.WebhookMode {
		config.WebhookURL = os.Getenv("WEBHOOK_URL")
		if config.WebhookURL == "" {
			return nil, fmt.Errorf("WEBHOOK_URL is required when WEBHOOK_MODE is true")
		}
	}

	// Use Mock DB (default: false)
	config.UseMockDB = os.Getenv("USE_MOCK_DB") == "true"

	// SQLite path (default: users.db next to the binary)
	config.SQLitePath = os.Getenv("SQLITE_PATH")
	if config.SQLitePath == "" {
		config.SQLitePath = "users.db"
	}

	return config, nil
}
