package searching

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tunelens/src/music"
)

// telegramResultLimit caps how many tracks a bot reply lists.
const telegramResultLimit = 10

// TelegramHandler handles Telegram commands for the searching feature
type TelegramHandler struct {
	service *Service
}

// NewTelegramHandler creates a new Telegram handler for the searching feature
func NewTelegramHandler(service *Service) *TelegramHandler {
	return &TelegramHandler{service: service}
}

// HandleCommand processes searching-related Telegram commands
func (h *TelegramHandler) HandleCommand(bot *tgbotapi.BotAPI, chatID int64, command string, args string) error {
	switch command {
	case "search":
		return h.handleSearch(bot, chatID, args)
	default:
		bot.Send(tgbotapi.NewMessage(chatID, "❌ Unknown search command. Use /search <query>"))
		return nil
	}
}

// GetCommands returns the available commands for this handler
func (h *TelegramHandler) GetCommands() map[string]string {
	return map[string]string{
		"search": "Search tracks from a free-text query (/search 90s hip-hop by Nas)",
	}
}

// HandleCallback handles callback queries for this feature (searching has no callbacks)
func (h *TelegramHandler) HandleCallback(bot *tgbotapi.BotAPI, callback *tgbotapi.CallbackQuery) bool {
	return false
}

// handleSearch runs the search chain and replies with the top matches
func (h *TelegramHandler) handleSearch(bot *tgbotapi.BotAPI, chatID int64, args string) error {
	query := strings.TrimSpace(args)
	if query == "" {
		bot.Send(tgbotapi.NewMessage(chatID, "Usage: /search <free-text query>, e.g. /search 90s hip-hop by Nas"))
		return nil
	}

	result := h.service.Search(context.Background(), query)
	if result.Error != "" {
		bot.Send(tgbotapi.NewMessage(chatID, "❌ "+result.Error))
		return nil
	}

	msg := tgbotapi.NewMessage(chatID, formatTracks(query, result.Tracks))
	msg.ParseMode = tgbotapi.ModeMarkdown
	bot.Send(msg)
	return nil
}

// formatTracks renders the top matches as a markdown list
func formatTracks(query string, tracks []music.Track) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎵 *Results for* `%s`\n\n", query)
	for i, track := range tracks {
		if i == telegramResultLimit {
			fmt.Fprintf(&b, "\n...and %d more", len(tracks)-telegramResultLimit)
			break
		}
		fmt.Fprintf(&b, "%d. *%s* - %s\n", i+1, track.Name, artistNames(track))
	}
	return b.String()
}

func artistNames(track music.Track) string {
	names := make([]string, 0, len(track.Artists))
	for _, artist := range track.Artists {
		names = append(names, artist.Name)
	}
	return strings.Join(names, ", ")
}
