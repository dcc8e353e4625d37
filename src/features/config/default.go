package config

var defaultConfig = Config{
	Server: Server{
		PrintRoutes: false,
		Port:        8000,
	},
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Interpreter: Interpreter{
		APIKey:         "", // Usually set through DEEPSEEK_API_KEY
		BaseURL:        "https://api.deepseek.com/v1",
		Model:          "deepseek-chat",
		TimeoutSeconds: 30,
	},
	Catalog: Catalog{
		ClientID:     "", // Usually set through SPOTIFY_CLIENT_ID
		ClientSecret: "", // Usually set through SPOTIFY_CLIENT_SECRET
	},
	Telegram: Telegram{
		Enabled:      false,
		Token:        "",                                   // Can be obtained with https://t.me/BotFather
		AllowedUsers: []string{"<your_telegram_username>"}, // No @
		BotHandle:    "@<YourTelegramUserBot>",             // With @
	},
	Metrics: Metrics{
		Enabled: true,
	},
}
