package serverutils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCanonicalUUID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"canonical v4", "a3bb189e-8bf9-3888-9912-ace4e6543002", true},
		{"uppercase accepted", "A3BB189E-8BF9-3888-9912-ACE4E6543002", true},
		{"v1 accepted", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"empty", "", false},
		{"word", "not-a-uuid", false},
		{"missing hyphens", "a3bb189e8bf938889912ace4e6543002", false},
		{"braced", "{a3bb189e-8bf9-3888-9912-ace4e6543002}", false},
		{"urn prefix", "urn:uuid:a3bb189e-8bf9-3888-9912-ace4e6543002", false},
		{"nil uuid rejected", "00000000-0000-0000-0000-000000000000", false},
		{"bad variant nibble", "a3bb189e-8bf9-3888-c912-ace4e6543002", false},
		{"bad version nibble", "a3bb189e-8bf9-0888-9912-ace4e6543002", false},
		{"trailing garbage", "a3bb189e-8bf9-3888-9912-ace4e6543002x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCanonicalUUID(tt.in))
		})
	}
}

func resolveVia(t *testing.T, header, query string) (uuid.UUID, bool) {
	t.Helper()

	var gotId uuid.UUID
	var gotOk bool

	app := fiber.New()
	app.Get("/probe", func(ctx *fiber.Ctx) error {
		gotId, gotOk = ResolveIdentity(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})

	target := "/probe"
	if query != "" {
		target += "?userId=" + query
	}
	req := httptest.NewRequest("GET", target, nil)
	if header != "" {
		req.Header.Set("x-user-id", header)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return gotId, gotOk
}

func TestResolveIdentityHeader(t *testing.T) {
	id := uuid.New()

	got, ok := resolveVia(t, id.String(), "")
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestResolveIdentityQueryFallback(t *testing.T) {
	id := uuid.New()

	got, ok := resolveVia(t, "", id.String())
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestResolveIdentityHeaderWinsOverQuery(t *testing.T) {
	headerId := uuid.New()
	queryId := uuid.New()

	got, ok := resolveVia(t, headerId.String(), queryId.String())
	require.True(t, ok)
	assert.Equal(t, headerId, got)
}

func TestResolveIdentityMalformedHeaderFallsThrough(t *testing.T) {
	queryId := uuid.New()

	got, ok := resolveVia(t, "not-a-uuid", queryId.String())
	require.True(t, ok, "a garbage header must not mask a valid query param")
	assert.Equal(t, queryId, got)
}

func TestResolveIdentityAbsent(t *testing.T) {
	_, ok := resolveVia(t, "", "")
	assert.False(t, ok)
}
