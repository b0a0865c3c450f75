package domain

import (
	"strconv"
	"strings"
)

// FillTopicCreated renders the topic-created template, replacing the
// {topic_name} and {thread_id} placeholders.
func FillTopicCreated(tmpl, topicName string, threadID int) string {
	return strings.NewReplacer(
		"{topic_name}", topicName,
		"{thread_id}", strconv.Itoa(threadID),
	).Replace(tmpl)
}
