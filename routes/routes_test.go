package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dosada05/game-roster/db"
	"github.com/Dosada05/game-roster/events"
	"github.com/Dosada05/game-roster/handlers"
	"github.com/Dosada05/game-roster/repositories"
	"github.com/Dosada05/game-roster/services"
	"github.com/gorilla/websocket"
)

type testServer struct {
	*httptest.Server
	hub   *events.Hub
	token string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	conn, err := db.Connect("sqlite3", ":memory:", 5*time.Second)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	if err := db.Migrate(context.Background(), conn, "sqlite3"); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	playerRepo := repositories.NewPlayerRepository(conn)
	gameRepo := repositories.NewGameRepository(conn)
	hub := events.NewHub(nil)

	authService, err := services.NewAuthService(services.AuthConfig{
		Username:  "test",
		Password:  "test",
		Secret:    "secret",
		AccessTTL: time.Minute,
	})
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}

	router := NewRouter(Options{AllowedOrigins: []string{"*"}, Tokens: authService}, Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Player:    handlers.NewPlayerHandler(services.NewPlayerService(playerRepo)),
		Game:      handlers.NewGameHandler(services.NewGameService(gameRepo, playerRepo, nil, hub, nil)),
		Admin:     handlers.NewAdminHandler(services.NewAdminService(playerRepo, gameRepo)),
		Dashboard: handlers.NewDashboardHandler(services.NewDashboardService(playerRepo, gameRepo)),
		WebSocket: handlers.NewWebSocketHandler(hub, []string{"*"}, nil),
		Health:    handlers.NewHealthHandler(conn),
	})

	srv := &testServer{Server: httptest.NewServer(router), hub: hub}
	t.Cleanup(func() {
		hub.Close()
		srv.Close()
		conn.Close()
	})

	status, body := srv.do(t, http.MethodPost, "/login", `{"username":"test","password":"test"}`, "")
	if status != http.StatusOK {
		t.Fatalf("login status = %d, body = %v", status, body)
	}
	srv.token, _ = body["access_token"].(string)
	if srv.token == "" {
		t.Fatalf("login returned no access_token: %v", body)
	}
	return srv
}

func (s *testServer) do(t *testing.T, method, path, body, token string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, s.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	out := map[string]interface{}{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: decode %q: %v", method, path, raw, err)
		}
	}
	return resp.StatusCode, out
}

func (s *testServer) authed(t *testing.T, method, path, body string) (int, map[string]interface{}) {
	t.Helper()
	return s.do(t, method, path, body, s.token)
}

func idOf(t *testing.T, body map[string]interface{}) int {
	t.Helper()
	id, ok := body["id"].(float64)
	if !ok {
		t.Fatalf("response has no id: %v", body)
	}
	return int(id)
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.do(t, http.MethodPost, "/login", `{"username":"test","password":"nope"}`, "")
	if status != http.StatusUnauthorized {
		t.Errorf("bad login status = %d, want 401", status)
	}
	if _, ok := body["access_token"]; ok {
		t.Errorf("bad login returned a token")
	}
	if body["detail"] != "Bad username or password" {
		t.Errorf("detail = %v", body["detail"])
	}

	status, _ = srv.do(t, http.MethodPost, "/login", `{"username":`, "")
	if status != http.StatusBadRequest {
		t.Errorf("malformed login status = %d, want 400", status)
	}
}

func TestCurrentUser(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/user", "/protected_example"} {
		status, body := srv.authed(t, http.MethodGet, path, "")
		if status != http.StatusOK || body["user"] != "test" {
			t.Errorf("GET %s = %d %v, want 200 user=test", path, status, body)
		}

		status, body = srv.do(t, http.MethodGet, path, "", "")
		if status != http.StatusUnauthorized || body["detail"] != "Missing Authorization Header" {
			t.Errorf("GET %s without token = %d %v", path, status, body)
		}
	}

	status, _ := srv.do(t, http.MethodPost, "/new_game", `{"name":"x"}`, "not-a-token")
	if status != http.StatusUnauthorized {
		t.Errorf("POST /new_game with bad token = %d, want 401", status)
	}
}

func TestNewPlayer(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.authed(t, http.MethodPost, "/new_player", `{"name":"abc","email":"abc@example.com"}`)
	if status != http.StatusOK || body["status"] != "success" || body["success"] != true {
		t.Fatalf("new_player = %d %v", status, body)
	}
	idOf(t, body)

	status, body = srv.authed(t, http.MethodPost, "/new_player", `{"name":"abc","email":"other@example.com"}`)
	if status != http.StatusNotFound || body["message"] != "player with such name or email already exists" {
		t.Errorf("duplicate new_player = %d %v", status, body)
	}

	status, body = srv.authed(t, http.MethodPost, "/new_player", `{"name":"xyz","email":"x@example.com"}`)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("invalid name status = %d, want 422 (%v)", status, body)
	}
	if _, ok := body["detail"]; !ok {
		t.Errorf("invalid name body has no detail: %v", body)
	}
}

func TestAddPlayerToGame(t *testing.T) {
	srv := newTestServer(t)

	_, body := srv.authed(t, http.MethodPost, "/new_game", `{"name":"chess"}`)
	gameID := idOf(t, body)

	// Одинаковые имена игр разрешены.
	status, body := srv.authed(t, http.MethodPost, "/new_game", `{"name":"chess"}`)
	if status != http.StatusOK || idOf(t, body) == gameID {
		t.Errorf("second game with same name = %d %v", status, body)
	}

	playerIDs := make([]int, 0, 6)
	for _, name := range []string{"a1", "b2", "c3", "d4", "e5", "f6"} {
		_, body := srv.authed(t, http.MethodPost, "/new_player", fmt.Sprintf(`{"name":%q,"email":"%s@example.com"}`, name, name))
		playerIDs = append(playerIDs, idOf(t, body))
	}

	for _, pid := range playerIDs[:5] {
		status, body := srv.authed(t, http.MethodPost, "/add_player_to_game", fmt.Sprintf(`{"game_id":%d,"player_id":%d}`, gameID, pid))
		if status != http.StatusOK || idOf(t, body) != gameID {
			t.Fatalf("add player %d = %d %v", pid, status, body)
		}
	}

	status, body = srv.authed(t, http.MethodPost, "/add_player_to_game", fmt.Sprintf(`{"game_id":%d,"player_id":%d}`, gameID, playerIDs[5]))
	if status != http.StatusNotFound || body["message"] != "count of players must be less than 5 or equal 5" {
		t.Errorf("6th player = %d %v", status, body)
	}

	status, body = srv.authed(t, http.MethodPost, "/add_player_to_game", fmt.Sprintf(`{"game_id":%d,"player_id":%d}`, 9999, playerIDs[0]))
	if status != http.StatusNotFound || body["message"] != "the game with such id doesn't exist" {
		t.Errorf("missing game = %d %v", status, body)
	}

	status, body = srv.authed(t, http.MethodGet, fmt.Sprintf("/games/%d", gameID), "")
	if status != http.StatusOK {
		t.Fatalf("GET game = %d %v", status, body)
	}
	game, _ := body["game"].(map[string]interface{})
	players, _ := game["players"].([]interface{})
	if len(players) != 5 {
		t.Errorf("game has %d players, want 5", len(players))
	}

	status, body = srv.authed(t, http.MethodGet, "/admin/stats", "")
	if status != http.StatusOK || body["memberships_total"] != float64(5) {
		t.Errorf("stats = %d %v", status, body)
	}
}

func TestAdminGameLimit(t *testing.T) {
	srv := newTestServer(t)

	for i := 0; i < 5; i++ {
		status, body := srv.authed(t, http.MethodPost, "/admin/games", fmt.Sprintf(`{"name":"g%d"}`, i))
		if status != http.StatusCreated {
			t.Fatalf("admin create game %d = %d %v", i, status, body)
		}
	}

	status, body := srv.authed(t, http.MethodPost, "/admin/games", `{"name":"extra"}`)
	if status != http.StatusForbidden {
		t.Errorf("admin create over limit = %d %v, want 403", status, body)
	}

	// Основной API лимит не применяет.
	status, _ = srv.authed(t, http.MethodPost, "/new_game", `{"name":"extra"}`)
	if status != http.StatusOK {
		t.Errorf("new_game over admin limit = %d, want 200", status)
	}

	status, body = srv.authed(t, http.MethodGet, "/admin/games?search=extra", "")
	if status != http.StatusOK || body["total_count"] != float64(1) {
		t.Errorf("admin list = %d %v", status, body)
	}

	status, _ = srv.authed(t, http.MethodDelete, "/admin/games/9999", "")
	if status != http.StatusNotFound {
		t.Errorf("delete missing game = %d, want 404", status)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	status, body := srv.do(t, http.MethodGet, "/healthz", "", "")
	if status != http.StatusOK || body["status"] != "ok" {
		t.Errorf("healthz = %d %v", status, body)
	}
}

func TestGameEventsOverWebsocket(t *testing.T) {
	srv := newTestServer(t)

	_, body := srv.authed(t, http.MethodPost, "/new_game", `{"name":"live"}`)
	gameID := idOf(t, body)
	_, body = srv.authed(t, http.MethodPost, "/new_player", `{"name":"abc","email":"abc@example.com"}`)
	playerID := idOf(t, body)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + fmt.Sprintf("/ws/games/%d", gameID)
	ws, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer ws.Close()

	room := events.GameRoom(gameID)
	deadline := time.Now().Add(2 * time.Second)
	for srv.hub.ClientCount(room) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("client was not registered in %s", room)
		}
		time.Sleep(10 * time.Millisecond)
	}

	status, _ := srv.authed(t, http.MethodPost, "/add_player_to_game", fmt.Sprintf(`{"game_id":%d,"player_id":%d}`, gameID, playerID))
	if status != http.StatusOK {
		t.Fatalf("add_player_to_game = %d", status)
	}

	_ = ws.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg events.Message
	if err := ws.ReadJSON(&msg); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if msg.Type != events.TypePlayerAdded || msg.RoomID != room {
		t.Errorf("event = %+v", msg)
	}
}

func TestAdminEmptyNames(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.authed(t, http.MethodPost, "/admin/players", `{"name":"","email":"x@example.com"}`)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("admin player with empty name = %d %v, want 422", status, body)
	}
	status, body = srv.authed(t, http.MethodPost, "/admin/games", `{"name":""}`)
	if status != http.StatusUnprocessableEntity {
		t.Errorf("admin game with empty name = %d %v, want 422", status, body)
	}

	status, body = srv.authed(t, http.MethodGet, "/admin/stats", "")
	if status != http.StatusOK || body["players_total"] != float64(0) || body["games_total"] != float64(0) {
		t.Errorf("stats after rejected creates = %d %v", status, body)
	}
}

func TestAddPlayerToGameMissingFields(t *testing.T) {
	srv := newTestServer(t)

	_, body := srv.authed(t, http.MethodPost, "/new_game", `{"name":"chess"}`)
	gameID := idOf(t, body)

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"empty body object", `{}`, "game_id"},
		{"no player_id", fmt.Sprintf(`{"game_id":%d}`, gameID), "player_id"},
		{"no game_id", `{"player_id":1}`, "game_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := srv.authed(t, http.MethodPost, "/add_player_to_game", tt.body)
			if status != http.StatusUnprocessableEntity {
				t.Fatalf("status = %d %v, want 422", status, body)
			}
			detail, _ := body["detail"].([]interface{})
			if len(detail) != 1 {
				t.Fatalf("detail = %v", body["detail"])
			}
			entry, _ := detail[0].(map[string]interface{})
			loc, _ := entry["loc"].([]interface{})
			if len(loc) != 2 || loc[1] != tt.wantField {
				t.Errorf("loc = %v, want [body %s]", entry["loc"], tt.wantField)
			}
		})
	}

	// Явный ноль остаётся обычным несуществующим id.
	status, body := srv.authed(t, http.MethodPost, "/add_player_to_game", `{"game_id":0,"player_id":0}`)
	if status != http.StatusNotFound || body["message"] != "the game with such id doesn't exist" {
		t.Errorf("zero ids = %d %v, want 404", status, body)
	}
}

func TestNewPlayerEmptyEmail(t *testing.T) {
	srv := newTestServer(t)

	status, body := srv.authed(t, http.MethodPost, "/new_player", `{"name":"abc","email":""}`)
	if status != http.StatusOK || body["success"] != true {
		t.Errorf("new_player with empty email = %d %v, want 200", status, body)
	}
}
