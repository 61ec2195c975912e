// Package bot is the Telegram transport: it receives updates, hands
// message text to the orchestrator off the polling loop, and sends the
// reply back with the quick menu attached.
package bot

import (
	"context"
	"log"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"shopbot/history"
	"shopbot/orchestrator"
)

const welcomeText = `Hi! I'm a bot for working with the store's product database.

I can help you with:

📦 Product catalog:
- Show all products
- Find products by name
- Add a new product

🧮 Calculations:
- Simple arithmetic
- Advanced calculator with functions (sin, cos, sqrt, log and more)

🌐 Internet and information:
- Web search (DuckDuckGo)
- Current currency exchange rates (EUR/USD/RUB and others)

🌍 Translation:
- Translate text to English, German, French, and Russian

Just tell me what you want to do, for example:
"show all products"
"find tea"
"add product apples 120 fruit"
"calculate (2 + 3) * 4"
"calculate sqrt(16) + sin(pi/2)"
"search the web for weather in Moscow"
"show the dollar exchange rate"
"translate hello to German"

You can also use the quick menu below.

Let's start!`

// failureReply is sent when the orchestrator returns an error. The
// real cause stays in the logs.
const failureReply = "Something went wrong while preparing an answer. Please try again."

// Bot wires Telegram updates to the orchestrator.
type Bot struct {
	api   *tgbot.Bot
	orch  *orchestrator.Orchestrator
	store history.Store
}

// New creates the Telegram bot and registers its handlers. The token
// is validated against the Telegram API on the first Run.
func New(token string, orch *orchestrator.Orchestrator, store history.Store) (*Bot, error) {
	b := &Bot{
		orch:  orch,
		store: store,
	}

	api, err := tgbot.New(token,
		tgbot.WithMessageTextHandler("/start", tgbot.MatchTypeExact, b.handleStart),
		tgbot.WithCallbackQueryDataHandler("action_", tgbot.MatchTypePrefix, b.handleAction),
		tgbot.WithDefaultHandler(b.handleMessage),
	)
	if err != nil {
		return nil, err
	}

	b.api = api
	return b, nil
}

// Run starts long polling and blocks until the context is canceled.
func (b *Bot) Run(ctx context.Context) {
	b.api.Start(ctx)
}

// handleStart clears the user's history and sends the welcome message
// with the quick menu.
func (b *Bot) handleStart(ctx context.Context, api *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	b.store.Reset(update.Message.From.ID)

	b.send(ctx, update.Message.Chat.ID, welcomeText)
}

// handleMessage forwards any other text to the orchestrator. The
// pipeline runs in its own goroutine so a slow completion or tool call
// never stalls update polling.
func (b *Bot) handleMessage(ctx context.Context, api *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	text := update.Message.Text

	go b.respond(ctx, chatID, userID, text)
}

// handleAction turns a quick menu button press into the equivalent
// text request and runs it through the same pipeline.
func (b *Bot) handleAction(ctx context.Context, api *tgbot.Bot, update *models.Update) {
	cb := update.CallbackQuery
	if cb == nil {
		return
	}

	act := resolveAction(cb)
	b.answerCallback(ctx, cb.ID, act.ack)
	if !act.run {
		return
	}

	go b.respond(ctx, act.chatID, cb.From.ID, act.text)
}

type action struct {
	ack    string
	text   string
	chatID int64
	run    bool
}

// resolveAction maps a callback press to the acknowledgement shown in
// Telegram and, when the press can be acted on, the request to run.
// Presses on messages Telegram no longer exposes (too old) are
// acknowledged without running anything, since there is no chat to
// reply into.
func resolveAction(cb *models.CallbackQuery) action {
	text, ok := actionPhrases[cb.Data]
	if !ok {
		return action{ack: "Unknown action"}
	}
	if cb.Message.Message == nil {
		return action{ack: "This menu has expired, send /start for a fresh one."}
	}
	return action{
		ack:    "Working on it...",
		text:   text,
		chatID: cb.Message.Message.Chat.ID,
		run:    true,
	}
}

// respond runs the orchestrator for one message and delivers the
// reply. Failures are logged and reported to the user generically.
func (b *Bot) respond(ctx context.Context, chatID, userID int64, text string) {
	reply, err := b.orch.Respond(ctx, userID, text)
	if err != nil {
		log.Printf("user %d: pipeline failed: %v", userID, err)
		reply = failureReply
	}
	b.send(ctx, chatID, reply)
}

func (b *Bot) send(ctx context.Context, chatID int64, text string) {
	_, err := b.api.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: quickMenu(),
	})
	if err != nil {
		log.Printf("chat %d: failed to send message: %v", chatID, err)
	}
}

func (b *Bot) answerCallback(ctx context.Context, callbackID, text string) {
	_, err := b.api.AnswerCallbackQuery(ctx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
	})
	if err != nil {
		log.Printf("failed to answer callback query: %v", err)
	}
}
