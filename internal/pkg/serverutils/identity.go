package serverutils

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Canonical 36-char hyphenated UUID: version nibble 1-5, variant 8/9/a/b.
// Anything looser (URNs, braces, missing hyphens) is rejected on purpose.
var uuidPattern = regexp.MustCompile(
	`^[0-9a-f]{8}-[0-9a-f]{4}-[1-5][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsCanonicalUUID reports whether s is a canonical UUID string.
func IsCanonicalUUID(s string) bool {
	return uuidPattern.MatchString(strings.ToLower(s))
}

// ResolveIdentity extracts the caller identity from the x-user-id
// header, falling back to the userId query parameter. The identifier is
// a client-held hint used only as a lookup key; no credential check
// happens here. Returns false when absent or malformed.
func ResolveIdentity(ctx *fiber.Ctx) (uuid.UUID, bool) {
	fromHeader := strings.TrimSpace(ctx.Get("x-user-id"))
	if IsCanonicalUUID(fromHeader) {
		id, err := uuid.Parse(fromHeader)
		return id, err == nil
	}

	fromQuery := strings.TrimSpace(ctx.Query("userId"))
	if IsCanonicalUUID(fromQuery) {
		id, err := uuid.Parse(fromQuery)
		return id, err == nil
	}

	return uuid.Nil, false
}
