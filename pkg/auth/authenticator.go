package auth

import "log/slog"

type authenticator struct {
	authorizedUserIDs map[int64]bool
}

func NewAuthenticator(authorizedUserIDs []int64) *authenticator {
	slog.Info("telegram authorized user IDs", "user_ids", authorizedUserIDs)

	ids := make(map[int64]bool, len(authorizedUserIDs))
	for _, id := range authorizedUserIDs {
		ids[id] = true
	}

	return &authenticator{
		authorizedUserIDs: ids,
	}
}

func (a *authenticator) IsAuthorized(userID int64) bool {
	if !a.authorizedUserIDs[userID] {
		slog.Warn("unauthorized access attempt", "userID", userID)
		return false
	}
	return true
}
