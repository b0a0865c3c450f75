package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/topic-relay-bot/pkg/domain"
	"github.com/dskvich/topic-relay-bot/pkg/logger"
)

// relay copies one private message into the active topic thread of the
// default group. At most one outbound call is made per message; the original
// formatting entities travel with it, so no parse mode is set.
func (h *Handler) relay(ctx context.Context, client telegramClient, msg *models.Message, content domain.Content) {
	if !h.authenticator.IsAuthorized(msg.From.ID) {
		return
	}

	topic, threadID, ok := h.session.Active()
	if !ok {
		h.reply(ctx, client, msg.Chat.ID, "⚠️ First create topic with /new <TOPIC>")
		return
	}

	slog.InfoContext(ctx, "relaying content", "kind", content.Kind, "topic", topic, "threadID", threadID)

	var err error
	switch content.Kind {
	case domain.ContentText:
		_, err = client.SendMessage(ctx, &bot.SendMessageParams{
			ChatID:          h.groupID,
			MessageThreadID: threadID,
			Text:            content.Text,
			Entities:        content.Entities,
		})

	case domain.ContentPhoto:
		_, err = client.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:          h.groupID,
			MessageThreadID: threadID,
			Photo:           &models.InputFileString{Data: content.FileID},
			Caption:         content.Text,
			CaptionEntities: content.Entities,
		})

	case domain.ContentVideo:
		_, err = client.SendVideo(ctx, &bot.SendVideoParams{
			ChatID:          h.groupID,
			MessageThreadID: threadID,
			Video:           &models.InputFileString{Data: content.FileID},
			Caption:         content.Text,
			CaptionEntities: content.Entities,
		})

	case domain.ContentDocument:
		_, err = client.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:          h.groupID,
			MessageThreadID: threadID,
			Document:        &models.InputFileString{Data: content.FileID},
			Caption:         content.Text,
			CaptionEntities: content.Entities,
		})

	case domain.ContentNone:
		// Nothing to forward; the confirmation below is still sent.
		// The dispatcher does not route such messages here.
	}

	if err != nil {
		slog.ErrorContext(ctx, "relaying content", "kind", content.Kind, "threadID", threadID, logger.Err(err))
		h.reply(ctx, client, msg.Chat.ID, fmt.Sprintf("⚠️ Failed to post: %s", err))
		return
	}

	h.reply(ctx, client, msg.Chat.ID, "✅ Content posted in group")
}
