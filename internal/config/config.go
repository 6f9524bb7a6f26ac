package config

import "os"

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings for the run ledger.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OpenAIConfig holds the completion service settings. The API key may
// also come from the OPENSESSION_API_KEY or OPENAI_API_KEY environment
// variables; absence at generation time is a fatal startup error.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"` // optional
}

// FeedConfig is one named RSS endpoint.
type FeedConfig struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// GenerateConfig controls the two generation runs.
type GenerateConfig struct {
	NewsPerFeed  int `mapstructure:"news_per_feed"`  // articles kept per feed for the news run
	IdeasPerFeed int `mapstructure:"ideas_per_feed"` // articles kept per feed for the ideas run
}

// PathsConfig locates the knowledge base and the artifact tree.
type PathsConfig struct {
	DataDir      string `mapstructure:"data_dir"`      // artifact output root
	KnowledgeDir string `mapstructure:"knowledge_dir"` // brand knowledge markdown
	ConfigDir    string `mapstructure:"config_dir"`    // auxiliary config (hotness scoring)
}

// ServerConfig controls the artifact HTTP server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// WorkerConfig controls scheduled generation inside `serve`.
type WorkerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Interval string `mapstructure:"interval"` // duration string, e.g. "6h"
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Redis    RedisConfig    `mapstructure:"redis"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Feeds    []FeedConfig   `mapstructure:"feeds"`
	Generate GenerateConfig `mapstructure:"generate"`
	Paths    PathsConfig    `mapstructure:"paths"`
	Server   ServerConfig   `mapstructure:"server"`
	Worker   WorkerConfig   `mapstructure:"worker"`
}

// APIKey resolves the completion service credential from config or
// environment.
func (c *Config) APIKey() string {
	if c.OpenAI.APIKey != "" {
		return c.OpenAI.APIKey
	}
	if k := os.Getenv("OPENSESSION_API_KEY"); k != "" {
		return k
	}
	return os.Getenv("OPENAI_API_KEY")
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if len(c.Feeds) == 0 {
		c.Feeds = []FeedConfig{
			{Name: "TechCrunch AI", URL: "https://techcrunch.com/category/artificial-intelligence/feed/"},
			{Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
			{Name: "Wired", URL: "https://www.wired.com/feed/rss"},
		}
	}
	if c.Generate.NewsPerFeed == 0 {
		c.Generate.NewsPerFeed = 15
	}
	if c.Generate.IdeasPerFeed == 0 {
		c.Generate.IdeasPerFeed = 10
	}
	if c.Paths.DataDir == "" {
		c.Paths.DataDir = "./public/data"
	}
	if c.Paths.KnowledgeDir == "" {
		c.Paths.KnowledgeDir = "./knowledge"
	}
	if c.Paths.ConfigDir == "" {
		c.Paths.ConfigDir = "./configs"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Worker.Interval == "" {
		c.Worker.Interval = "6h"
	}
}
