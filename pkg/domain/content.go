package domain

import (
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"
)

type ContentKind string

const (
	ContentNone     ContentKind = "none"
	ContentText     ContentKind = "text"
	ContentPhoto    ContentKind = "photo"
	ContentVideo    ContentKind = "video"
	ContentDocument ContentKind = "document"
)

// Content is a relayable view of an incoming message. For ContentText, Text
// holds the message text; for media kinds it holds the caption, possibly
// empty. Entities match Text (message entities or caption entities).
type Content struct {
	Kind     ContentKind
	Text     string
	Entities []models.MessageEntity
	FileID   string
}

// ClassifyMessage tags a message by relayable content. Precedence is fixed:
// text wins over any media, then photo, video, document. A photo message
// carries multiple resolutions; the last entry is the largest one.
func ClassifyMessage(m *models.Message) Content {
	c := Content{
		Text:     lo.CoalesceOrEmpty(m.Text, m.Caption),
		Entities: lo.Ternary(m.Text != "", m.Entities, m.CaptionEntities),
	}

	switch {
	case m.Text != "":
		c.Kind = ContentText
	case len(m.Photo) > 0:
		c.Kind = ContentPhoto
		c.FileID = m.Photo[len(m.Photo)-1].FileID
	case m.Video != nil:
		c.Kind = ContentVideo
		c.FileID = m.Video.FileID
	case m.Document != nil:
		c.Kind = ContentDocument
		c.FileID = m.Document.FileID
	default:
		c.Kind = ContentNone
	}

	return c
}
