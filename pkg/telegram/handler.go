package telegram

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/topic-relay-bot/pkg/domain"
	"github.com/dskvich/topic-relay-bot/pkg/logger"
	"github.com/dskvich/topic-relay-bot/pkg/session"
)

type Authenticator interface {
	IsAuthorized(userID int64) bool
}

type telegramClient interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *bot.SendPhotoParams) (*models.Message, error)
	SendVideo(ctx context.Context, params *bot.SendVideoParams) (*models.Message, error)
	SendDocument(ctx context.Context, params *bot.SendDocumentParams) (*models.Message, error)
	CreateForumTopic(ctx context.Context, params *bot.CreateForumTopicParams) (*models.ForumTopic, error)
}

// Handler routes private-chat updates: /start, /help and /new commands, and
// content relay for everything else the bot can forward.
type Handler struct {
	authenticator    Authenticator
	session          *session.Session
	groupID          int64
	welcomeMessage   string
	topicCreatedTmpl string
}

func NewHandler(
	authenticator Authenticator,
	sess *session.Session,
	groupID int64,
	welcomeMessage string,
	topicCreatedTmpl string,
) *Handler {
	return &Handler{
		authenticator:    authenticator,
		session:          sess,
		groupID:          groupID,
		welcomeMessage:   welcomeMessage,
		topicCreatedTmpl: topicCreatedTmpl,
	}
}

// HandleUpdate is the bot's default handler.
func (h *Handler) HandleUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handle(ctx, b, update)
}

func (h *Handler) handle(ctx context.Context, client telegramClient, update *models.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	if isCommand(msg.Text) {
		h.handleCommand(ctx, client, msg)
		return
	}

	// Only private messages are relayed; group chatter is not.
	if msg.Chat.Type != models.ChatTypePrivate {
		return
	}

	content := domain.ClassifyMessage(msg)
	if content.Kind == domain.ContentNone {
		slog.DebugContext(ctx, "ignoring message without relayable content", "chatID", msg.Chat.ID)
		return
	}

	h.relay(ctx, client, msg, content)
}

func (h *Handler) handleCommand(ctx context.Context, client telegramClient, msg *models.Message) {
	fields := strings.Fields(msg.Text)
	cmd := strings.ToLower(fields[0])
	cmd = strings.Split(cmd, "@")[0]

	switch cmd {
	case "/start", "/help":
		h.handleStart(ctx, client, msg)

	case "/new":
		h.handleNewTopic(ctx, client, msg, strings.Join(fields[1:], " "))

	default:
		slog.DebugContext(ctx, "unhandled command", "cmd", cmd)
	}
}

func isCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}

func (h *Handler) reply(ctx context.Context, client telegramClient, chatID int64, text string) {
	if _, err := client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		slog.ErrorContext(ctx, "sending reply", "chatID", chatID, logger.Err(err))
	}
}
