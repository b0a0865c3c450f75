package telegram

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/topic-relay-bot/pkg/domain"
	"github.com/dskvich/topic-relay-bot/pkg/logger"
)

// handleStart serves both /start and /help. Unauthorized users get no reply.
func (h *Handler) handleStart(ctx context.Context, client telegramClient, msg *models.Message) {
	if !h.authenticator.IsAuthorized(msg.From.ID) {
		return
	}

	h.reply(ctx, client, msg.Chat.ID, h.welcomeMessage)
}

// handleNewTopic creates a forum topic in the default group and makes it the
// active forwarding target.
func (h *Handler) handleNewTopic(ctx context.Context, client telegramClient, msg *models.Message, topicName string) {
	if !h.authenticator.IsAuthorized(msg.From.ID) {
		h.reply(ctx, client, msg.Chat.ID, "❌ Unauthorized")
		return
	}

	if topicName == "" {
		h.reply(ctx, client, msg.Chat.ID, "Usage: /new <TOPIC_NAME>")
		return
	}

	slog.InfoContext(ctx, "creating topic", "name", topicName, "groupID", h.groupID)

	topic, err := client.CreateForumTopic(ctx, &bot.CreateForumTopicParams{
		ChatID: h.groupID,
		Name:   topicName,
	})
	if err != nil {
		slog.ErrorContext(ctx, "creating topic", "name", topicName, "groupID", h.groupID, logger.Err(err))
		h.reply(ctx, client, msg.Chat.ID, "⚠️ Topic creation failed")
		return
	}

	h.session.SetActive(topicName, topic.MessageThreadID)
	h.reply(ctx, client, msg.Chat.ID, domain.FillTopicCreated(h.topicCreatedTmpl, topicName, topic.MessageThreadID))
}
