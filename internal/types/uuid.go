package types

import (
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"
)

const (
	UUID_PREFIX_USER            = "user"
	UUID_PREFIX_ORDER           = "ord"
	UUID_PREFIX_ORDER_ITEM      = "item"
	UUID_PREFIX_ORDER_PLACEMENT = "plc"
	UUID_PREFIX_REQUEST         = "req"
)

// GenerateUUID returns a lowercase ULID. ULIDs sort by creation time,
// which keeps index pages warm on time-ordered inserts.
func GenerateUUID() string {
	return strings.ToLower(ulid.Make().String())
}

// GenerateUUIDWithPrefix returns a prefixed ULID, e.g. "req_01h2...".
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}
