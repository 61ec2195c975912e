package bot

import (
	"github.com/go-telegram/bot/models"
)

// actionPhrases maps quick menu callback data to the text request the
// button stands for. The phrase goes through the normal pipeline as if
// the user had typed it.
var actionPhrases = map[string]string{
	"action_list":       "show all products",
	"action_search":     "find products",
	"action_add":        "add a product",
	"action_calc":       "calculate",
	"action_web_search": "search the web",
	"action_currency":   "show currency exchange rates",
	"action_translate":  "translate text",
}

// quickMenu builds the inline keyboard attached to every reply.
func quickMenu() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "📋 All products", CallbackData: "action_list"},
				{Text: "🔍 Find product", CallbackData: "action_search"},
			},
			{
				{Text: "➕ Add product", CallbackData: "action_add"},
				{Text: "🧮 Calculator", CallbackData: "action_calc"},
			},
			{
				{Text: "🌐 Web search", CallbackData: "action_web_search"},
				{Text: "💱 Currency rates", CallbackData: "action_currency"},
			},
			{
				{Text: "🌍 Translator", CallbackData: "action_translate"},
			},
		},
	}
}
