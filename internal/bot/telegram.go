// Package bot is the Telegram shell.  It long-polls for updates, keeps one
// session per chat, rejects non-text payloads and relays text turns to the
// session.
package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"mediconnect-bot/internal/core"
	"mediconnect-bot/internal/session"
)

// Bot wraps the Telegram API and the per-chat session table.  Updates are
// processed sequentially on one goroutine, so the table needs no locking and
// each session stays single-threaded.
type Bot struct {
	api        *tgbotapi.BotAPI
	newSession func() *session.Session
	sessions   map[int64]*session.Session
	log        zerolog.Logger
}

// New authenticates against the Telegram Bot API.
func New(token string, newSession func() *session.Session, log zerolog.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:        api,
		newSession: newSession,
		sessions:   make(map[int64]*session.Session),
		log:        log,
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info().Str("username", b.api.Self.UserName).Msg("telegram bot started")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.IsCommand() && msg.Command() == "start" {
		sess := b.newSession()
		b.sessions[chatID] = sess
		b.typing(chatID)
		b.send(chatID, sess.Greet(ctx))
		return
	}

	// Non-text payloads never reach the extractor.
	switch {
	case len(msg.Photo) > 0:
		b.sendPlain(chatID, core.RejectPhoto)
		return
	case msg.Voice != nil:
		b.sendPlain(chatID, core.RejectVoice)
		return
	case msg.Document != nil && strings.Contains(msg.Document.MimeType, "pdf"):
		b.sendPlain(chatID, core.RejectDocument)
		return
	case msg.Text == "":
		b.sendPlain(chatID, core.RejectOther)
		return
	}

	sess, ok := b.sessions[chatID]
	if !ok {
		sess = b.newSession()
		b.sessions[chatID] = sess
	}

	b.typing(chatID)
	reply := sess.HandleText(ctx, msg.Text)
	for _, t := range reply.Texts {
		b.send(chatID, t)
	}
	if reply.Done {
		delete(b.sessions, chatID)
	}
}

func (b *Bot) typing(chatID int64) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
		b.log.Debug().Err(err).Msg("failed to send typing action")
	}
}

func (b *Bot) send(chatID int64, t session.Text) {
	out := tgbotapi.NewMessage(chatID, t.Body)
	if t.Markdown {
		out.ParseMode = tgbotapi.ModeMarkdown
	}
	if _, err := b.api.Send(out); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("failed to send message")
	}
}

func (b *Bot) sendPlain(chatID int64, body string) {
	b.send(chatID, session.Text{Body: body})
}
