package services_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ffmax-tournament-api/handlers"
	"ffmax-tournament-api/services"
	"ffmax-tournament-api/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	app := fiber.New()

	handlers.SetupHealthRoutes(app, services.NewHealthService(st, "ffmax_test", nil))
	handlers.SetupTournamentRoutes(app, services.NewTournamentService(st, "http://localhost:3000"))
	handlers.SetupUploadRoutes(app, services.NewUploadService())
	return app, st
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeObject(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeList(t *testing.T, resp *http.Response) []map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createTournament(t *testing.T, app *fiber.App, body map[string]any) map[string]any {
	t.Helper()

	resp := doRequest(t, app, fiber.MethodPost, "/api/tournaments", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeObject(t, resp)
}

func TestCreateTournamentAppliesDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	doc := createTournament(t, app, map[string]any{"title": "Squad Cup", "mode": "Squad"})

	assert.NotEmpty(t, doc["id"])
	assert.NotContains(t, doc, "_id")
	assert.Equal(t, "Squad Cup", doc["title"])
	assert.Equal(t, "Squad", doc["mode"])
	assert.Equal(t, "upcoming", doc["status"])
	assert.Equal(t, "Free Fire Max", doc["game"])
	assert.Equal(t, "Global", doc["region"])
	assert.Equal(t, float64(48), doc["max_participants"])
	assert.Equal(t, "squad-cup", doc["slug"])
	assert.Regexp(t, `^[0-9a-f]{6}$`, doc["share_code"])
}

func TestCreateTournamentKeepsSuppliedShareCode(t *testing.T) {
	app, _ := newTestApp(t)

	doc := createTournament(t, app, map[string]any{"title": "Custom Code Cup", "share_code": "mycode"})
	assert.Equal(t, "mycode", doc["share_code"])
}

func TestCreateTournamentValidation(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing title", body: map[string]any{"mode": "Solo"}},
		{name: "mode outside allowed set", body: map[string]any{"title": "Cup", "mode": "Trio"}},
		{name: "status outside allowed set", body: map[string]any{"title": "Cup", "status": "cancelled"}},
		{name: "max_participants out of range", body: map[string]any{"title": "Cup", "max_participants": 2000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, fiber.MethodPost, "/api/tournaments", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}

	// nothing was persisted by the rejected payloads
	resp := doRequest(t, app, fiber.MethodGet, "/api/tournaments", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeList(t, resp))
}

func TestGetTournamentByEitherKey(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTournament(t, app, map[string]any{"title": "Squad Cup"})
	id := created["id"].(string)
	code := created["share_code"].(string)

	for _, ref := range []string{id, code} {
		resp := doRequest(t, app, fiber.MethodGet, "/api/tournaments/"+ref, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		doc := decodeObject(t, resp)
		assert.Equal(t, id, doc["id"], "lookup by %q must return the same record", ref)
		assert.NotContains(t, doc, "_id")
	}
}

func TestGetTournamentNotFoundVsBadRequest(t *testing.T) {
	app, _ := newTestApp(t)

	// well-formed id that matches nothing
	resp := doRequest(t, app, fiber.MethodGet, "/api/tournaments/000000000000000000000000", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// id-shaped but unparsable
	resp = doRequest(t, app, fiber.MethodGet, "/api/tournaments/zzzzzzzzzzzzzzzzzzzzzzzz", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// shorter strings are share codes, absent ones are 404
	resp = doRequest(t, app, fiber.MethodGet, "/api/tournaments/nosuch", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDependentEndpointsReturnNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	requests := []struct {
		method string
		path   string
		body   map[string]any
	}{
		{fiber.MethodPost, "/api/tournaments/nosuch/register", map[string]any{"name": "Ravi"}},
		{fiber.MethodGet, "/api/tournaments/nosuch/participants", nil},
		{fiber.MethodPost, "/api/tournaments/nosuch/matches", map[string]any{"round_name": "Finals"}},
		{fiber.MethodGet, "/api/tournaments/nosuch/matches", nil},
		{fiber.MethodGet, "/api/tournaments/nosuch/share", nil},
		{fiber.MethodGet, "/api/share/nosuch", nil},
	}
	for _, r := range requests {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			resp := doRequest(t, app, r.method, r.path, r.body)
			assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestRegisterParticipant(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTournament(t, app, map[string]any{"title": "Squad Cup"})
	id := created["id"].(string)
	code := created["share_code"].(string)

	// register through the share-code path; the stored tournament_id must
	// still be the internal id, and any body value is ignored
	resp := doRequest(t, app, fiber.MethodPost, "/api/tournaments/"+code+"/register", map[string]any{
		"name":          "Ravi",
		"ign":           "RavageX",
		"team_name":     "Night Owls",
		"tournament_id": "spoofed",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	participant := decodeObject(t, resp)

	assert.NotEmpty(t, participant["id"])
	assert.Equal(t, id, participant["tournament_id"])
	assert.Equal(t, "Ravi", participant["name"])

	// visible through the id path too
	resp = doRequest(t, app, fiber.MethodGet, "/api/tournaments/"+id+"/participants", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, participant["id"], list[0]["id"])
	assert.NotContains(t, list[0], "_id")
}

func TestRegisterParticipantValidation(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTournament(t, app, map[string]any{"title": "Squad Cup"})
	id := created["id"].(string)

	resp := doRequest(t, app, fiber.MethodPost, "/api/tournaments/"+id+"/register", map[string]any{"ign": "NoName"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateAndListMatches(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTournament(t, app, map[string]any{"title": "Squad Cup"})
	id := created["id"].(string)
	code := created["share_code"].(string)

	resp := doRequest(t, app, fiber.MethodPost, "/api/tournaments/"+id+"/matches", map[string]any{
		"round_name":   "Qualifiers",
		"map_name":     "Bermuda",
		"participants": []string{"Night Owls", "Red Vipers"},
		"result":       map[string]any{"winner": "Night Owls", "kills": 31},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	match := decodeObject(t, resp)

	assert.Equal(t, id, match["tournament_id"])
	assert.Equal(t, "scheduled", match["status"])
	assert.Equal(t, []any{"Night Owls", "Red Vipers"}, match["participants"])
	result, ok := match["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Night Owls", result["winner"])

	// missing round_name rejected
	resp = doRequest(t, app, fiber.MethodPost, "/api/tournaments/"+id+"/matches", map[string]any{"map_name": "Purgatory"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// listed through the share-code path
	resp = doRequest(t, app, fiber.MethodGet, "/api/tournaments/"+code+"/matches", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, match["id"], list[0]["id"])
}

func TestShareLink(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTournament(t, app, map[string]any{"title": "Squad Cup"})
	id := created["id"].(string)
	code := created["share_code"].(string)

	resp := doRequest(t, app, fiber.MethodGet, "/api/tournaments/"+id+"/share", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	link := decodeObject(t, resp)

	assert.Equal(t, code, link["code"])
	assert.Equal(t, fmt.Sprintf("http://localhost:3000/?t=%s", code), link["share_url"])
}

func TestGetByShareCodeOnly(t *testing.T) {
	app, _ := newTestApp(t)

	created := createTournament(t, app, map[string]any{"title": "Squad Cup"})
	id := created["id"].(string)
	code := created["share_code"].(string)

	resp := doRequest(t, app, fiber.MethodGet, "/api/share/"+code, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	doc := decodeObject(t, resp)
	assert.Equal(t, id, doc["id"])

	// no id fallback on the share endpoint
	resp = doRequest(t, app, fiber.MethodGet, "/api/share/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListTournaments(t *testing.T) {
	app, _ := newTestApp(t)

	createTournament(t, app, map[string]any{"title": "Cup One"})
	createTournament(t, app, map[string]any{"title": "Cup Two"})

	resp := doRequest(t, app, fiber.MethodGet, "/api/tournaments", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeList(t, resp)
	require.Len(t, list, 2)
	for _, doc := range list {
		assert.NotEmpty(t, doc["id"])
		assert.NotContains(t, doc, "_id")
	}
}

func TestUploadBannerUnconfigured(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/uploads/banner", nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
