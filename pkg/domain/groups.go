package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Group struct {
	ID    int64
	Label string
}

// GroupList is a comma-separated list of "id:label" pairs, in configuration
// order. Entries without a colon are skipped.
type GroupList []Group

func (g *GroupList) UnmarshalText(text []byte) error {
	var groups []Group
	for _, entry := range strings.Split(string(text), ",") {
		parts := strings.Split(entry, ":")
		if len(parts) < 2 {
			continue
		}

		id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return fmt.Errorf("parsing group ID %q: %w", parts[0], err)
		}
		groups = append(groups, Group{ID: id, Label: parts[1]})
	}

	*g = groups
	return nil
}

// Default returns the first configured group, the sole forwarding target.
func (g GroupList) Default() (Group, bool) {
	if len(g) == 0 {
		return Group{}, false
	}
	return g[0], true
}
