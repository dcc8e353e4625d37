package config

// Config holds the application configuration.
type Config struct {
	Server      Server      `yaml:"server"`
	Logger      Logger      `yaml:"logger"`
	Interpreter Interpreter `yaml:"interpreter"`
	Catalog     Catalog     `yaml:"catalog"`
	Telegram    Telegram    `yaml:"telegram"`
	Metrics     Metrics     `yaml:"metrics"`
}

// Server holds the configuration for the Fiber server
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port" validate:"required"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Interpreter holds the configuration for the query extraction model. The
// API key can live in the file but DEEPSEEK_API_KEY overrides it, so the
// file never has to carry a secret.
type Interpreter struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url" validate:"omitempty,url"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
}

// Catalog holds the Spotify app credentials. SPOTIFY_CLIENT_ID and
// SPOTIFY_CLIENT_SECRET override the file. Neither value is required at
// load time: missing credentials surface per request and in /api/health.
type Catalog struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

// Telegram holds the configuration for the bot surface
type Telegram struct {
	Enabled      bool     `yaml:"enabled"`
	Token        string   `yaml:"token"`
	AllowedUsers []string `yaml:"allowedUsers"`
	BotHandle    string   `yaml:"bot_handle"`
}

// Metrics holds the configuration for the scrape endpoint
type Metrics struct {
	Enabled bool `yaml:"enabled"`
}
