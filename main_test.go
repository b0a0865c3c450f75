package main

import (
	"strings"
	"testing"

	"github.com/caarlos0/env/v9"

	"github.com/dskvich/topic-relay-bot/pkg/domain"
)

func TestConfigParseFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("AUTHORIZED_USER_IDS", "111, 222")
	t.Setenv("GROUPS_CONFIG", "-100123:Work,malformed,-100456:Home")

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("Unexpected parse error: %v", err)
	}
	if err := cfg.validate(); err != nil {
		t.Fatalf("Unexpected validation error: %v", err)
	}

	if cfg.TelegramBotToken != "123:abc" {
		t.Errorf("Expected token from env, got %q", cfg.TelegramBotToken)
	}
	if len(cfg.AuthorizedUserIDs) != 2 || cfg.AuthorizedUserIDs[0] != 111 || cfg.AuthorizedUserIDs[1] != 222 {
		t.Errorf("Expected user IDs [111 222], got %v", cfg.AuthorizedUserIDs)
	}
	if len(cfg.Groups) != 2 {
		t.Fatalf("Expected malformed group entry skipped, got %v", cfg.Groups)
	}

	defaultGroup, ok := cfg.Groups.Default()
	if !ok || defaultGroup != (domain.Group{ID: -100123, Label: "Work"}) {
		t.Errorf("Expected first configured group as default, got %+v", defaultGroup)
	}

	if cfg.LogLevel != "INFO" {
		t.Errorf("Expected default log level INFO, got %q", cfg.LogLevel)
	}
	if cfg.SessionTimeoutSeconds != 3600 {
		t.Errorf("Expected default session timeout 3600, got %d", cfg.SessionTimeoutSeconds)
	}
	if !strings.Contains(cfg.TopicCreatedMsg, "{topic_name}") || !strings.Contains(cfg.TopicCreatedMsg, "{thread_id}") {
		t.Errorf("Expected default template with placeholders, got %q", cfg.TopicCreatedMsg)
	}
}

func TestConfigRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("AUTHORIZED_USER_IDS", "111")
	t.Setenv("GROUPS_CONFIG", "-100123:Work")

	cfg := Config{}
	if err := env.Parse(&cfg); err == nil {
		t.Error("Expected parse to fail without TELEGRAM_BOT_TOKEN")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantErrs []string
	}{
		{
			"valid",
			Config{AuthorizedUserIDs: domain.UserIDList{111}, Groups: domain.GroupList{{ID: -1, Label: "g"}}},
			nil,
		},
		{
			"no users",
			Config{Groups: domain.GroupList{{ID: -1, Label: "g"}}},
			[]string{"AUTHORIZED_USER_IDS"},
		},
		{
			"no groups",
			Config{AuthorizedUserIDs: domain.UserIDList{111}},
			[]string{"GROUPS_CONFIG"},
		},
		{
			"nothing configured",
			Config{},
			[]string{"AUTHORIZED_USER_IDS", "GROUPS_CONFIG"},
		},
	}

	for _, test := range tests {
		err := test.cfg.validate()

		if len(test.wantErrs) == 0 {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", test.name, err)
			}
			continue
		}

		if err == nil {
			t.Errorf("%s: expected validation error", test.name)
			continue
		}
		for _, want := range test.wantErrs {
			if !strings.Contains(err.Error(), want) {
				t.Errorf("%s: expected error to mention %s, got %v", test.name, want, err)
			}
		}
	}
}
