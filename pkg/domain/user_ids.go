package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// UserIDList is a comma-separated list of Telegram user IDs.
// Blank entries are ignored.
type UserIDList []int64

func (u *UserIDList) UnmarshalText(text []byte) error {
	var ids []int64
	for _, part := range strings.Split(string(text), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing user ID %q: %w", part, err)
		}
		ids = append(ids, id)
	}

	*u = ids
	return nil
}
