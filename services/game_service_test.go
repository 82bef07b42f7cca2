package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Dosada05/game-roster/events"
	"github.com/Dosada05/game-roster/models"
)

func newTestGameService(t *testing.T) (GameService, testRepos, *fakePublisher) {
	t.Helper()
	repos := setupTestRepos(t)
	pub := &fakePublisher{}
	return NewGameService(repos.games, repos.players, nil, pub, nil), repos, pub
}

func mustCreatePlayer(t *testing.T, repos testRepos, name string) *models.Player {
	t.Helper()
	p, err := NewPlayerService(repos.players).CreatePlayer(context.Background(), CreatePlayerInput{
		Name:  name,
		Email: name + "@example.com",
	})
	if err != nil {
		t.Fatalf("CreatePlayer(%s) error = %v", name, err)
	}
	return p
}

func TestCreateGameAllowsSameName(t *testing.T) {
	svc, repos, _ := newTestGameService(t)
	ctx := context.Background()

	first, err := svc.CreateGame(ctx, CreateGameInput{Name: "chess"})
	if err != nil {
		t.Fatalf("first CreateGame() error = %v", err)
	}
	second, err := svc.CreateGame(ctx, CreateGameInput{Name: "chess"})
	if err != nil {
		t.Fatalf("second CreateGame() error = %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("games share ID %d", first.ID)
	}

	// Лимит админки на этот путь не распространяется.
	for i := 0; i < models.MaxGamesViaAdmin+1; i++ {
		if _, err := svc.CreateGame(ctx, CreateGameInput{Name: fmt.Sprintf("g%d", i)}); err != nil {
			t.Fatalf("CreateGame(%d) error = %v", i, err)
		}
	}
	if n := countRows(t, repos.db, "games"); n != models.MaxGamesViaAdmin+3 {
		t.Errorf("games rows = %d, want %d", n, models.MaxGamesViaAdmin+3)
	}
}

func TestCreateGameNameTooLong(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	_, err := svc.CreateGame(context.Background(), CreateGameInput{Name: strings.Repeat("g", models.GameNameMaxLength+1)})
	if !errors.Is(err, ErrGameNameTooLong) {
		t.Errorf("CreateGame() error = %v, want ErrGameNameTooLong", err)
	}
}

func TestAddPlayerToGame(t *testing.T) {
	svc, repos, pub := newTestGameService(t)
	ctx := context.Background()

	game, _ := svc.CreateGame(ctx, CreateGameInput{Name: "poker"})
	p := mustCreatePlayer(t, repos, "abc")

	if err := svc.AddPlayerToGame(ctx, AddPlayerToGameInput{GameID: game.ID, PlayerID: p.ID}); err != nil {
		t.Fatalf("AddPlayerToGame() error = %v", err)
	}
	// Повторное добавление не ошибка и не новая запись.
	if err := svc.AddPlayerToGame(ctx, AddPlayerToGameInput{GameID: game.ID, PlayerID: p.ID}); err != nil {
		t.Fatalf("repeated AddPlayerToGame() error = %v", err)
	}
	if n := countRows(t, repos.db, "game_players"); n != 1 {
		t.Errorf("game_players rows = %d, want 1", n)
	}

	if pub.count() != 1 {
		t.Fatalf("published %d events, want 1", pub.count())
	}
	ev := pub.events[0]
	if ev.room != events.GameRoom(game.ID) {
		t.Errorf("event room = %q, want %q", ev.room, events.GameRoom(game.ID))
	}
	if msg, ok := ev.message.(events.Message); !ok || msg.Type != events.TypePlayerAdded {
		t.Errorf("event message = %+v, want PLAYER_ADDED", ev.message)
	}

	got, err := svc.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("GetGame() error = %v", err)
	}
	if len(got.Players) != 1 || got.Players[0].ID != p.ID {
		t.Errorf("GetGame().Players = %+v", got.Players)
	}
}

func TestAddPlayerToGameCapacity(t *testing.T) {
	svc, repos, _ := newTestGameService(t)
	ctx := context.Background()
	game, _ := svc.CreateGame(ctx, CreateGameInput{Name: "five"})

	names := []string{"a1", "b2", "c3", "d4", "e5"}
	for _, name := range names {
		p := mustCreatePlayer(t, repos, name)
		if err := svc.AddPlayerToGame(ctx, AddPlayerToGameInput{GameID: game.ID, PlayerID: p.ID}); err != nil {
			t.Fatalf("AddPlayerToGame(%s) error = %v", name, err)
		}
	}

	sixth := mustCreatePlayer(t, repos, "f6")
	err := svc.AddPlayerToGame(ctx, AddPlayerToGameInput{GameID: game.ID, PlayerID: sixth.ID})
	if !errors.Is(err, ErrGameFull) {
		t.Errorf("AddPlayerToGame(6th) error = %v, want ErrGameFull", err)
	}
	if n := countRows(t, repos.db, "game_players"); n != models.MaxPlayersPerGame {
		t.Errorf("game_players rows = %d, want %d", n, models.MaxPlayersPerGame)
	}

	// Вместимость проверяется раньше игрока: несуществующий игрок в полной игре тоже даёт ErrGameFull.
	err = svc.AddPlayerToGame(ctx, AddPlayerToGameInput{GameID: game.ID, PlayerID: 424242})
	if !errors.Is(err, ErrGameFull) {
		t.Errorf("AddPlayerToGame(missing player, full game) error = %v, want ErrGameFull", err)
	}
}

func TestAddPlayerToGameNotFound(t *testing.T) {
	svc, repos, pub := newTestGameService(t)
	ctx := context.Background()
	game, _ := svc.CreateGame(ctx, CreateGameInput{Name: "go"})
	p := mustCreatePlayer(t, repos, "abc")

	err := svc.AddPlayerToGame(ctx, AddPlayerToGameInput{GameID: 9999, PlayerID: p.ID})
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("missing game error = %v, want ErrGameNotFound", err)
	}

	err = svc.AddPlayerToGame(ctx, AddPlayerToGameInput{GameID: game.ID, PlayerID: 9999})
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("missing player error = %v, want ErrPlayerNotFound", err)
	}

	if n := countRows(t, repos.db, "game_players"); n != 0 {
		t.Errorf("game_players rows = %d, want 0", n)
	}
	if n := countRows(t, repos.db, "games"); n != 1 {
		t.Errorf("games rows = %d, want 1", n)
	}
	if n := countRows(t, repos.db, "players"); n != 1 {
		t.Errorf("players rows = %d, want 1", n)
	}
	if pub.count() != 0 {
		t.Errorf("published %d events on failure, want 0", pub.count())
	}
}

func TestUploadGameLogo(t *testing.T) {
	repos := setupTestRepos(t)
	uploader := newFakeUploader()
	pub := &fakePublisher{}
	svc := NewGameService(repos.games, repos.players, uploader, pub, nil)
	ctx := context.Background()

	game, _ := svc.CreateGame(ctx, CreateGameInput{Name: "chess"})

	updated, err := svc.UploadGameLogo(ctx, game.ID, strings.NewReader("first"), "image/png")
	if err != nil {
		t.Fatalf("UploadGameLogo() error = %v", err)
	}
	if updated.LogoKey == nil || updated.LogoURL == nil {
		t.Fatalf("logo key/url not set: %+v", updated)
	}
	firstKey := *updated.LogoKey
	if !strings.HasSuffix(firstKey, ".png") || !strings.HasPrefix(firstKey, fmt.Sprintf("games/%d/", game.ID)) {
		t.Errorf("logo key = %q", firstKey)
	}

	second, err := svc.UploadGameLogo(ctx, game.ID, strings.NewReader("second"), "image/jpeg")
	if err != nil {
		t.Fatalf("second UploadGameLogo() error = %v", err)
	}
	if len(uploader.deleted) != 1 || uploader.deleted[0] != firstKey {
		t.Errorf("deleted = %v, want [%s]", uploader.deleted, firstKey)
	}

	got, err := svc.GetGame(ctx, game.ID)
	if err != nil {
		t.Fatalf("GetGame() error = %v", err)
	}
	if got.LogoURL == nil || *got.LogoURL != "https://cdn.test/"+*second.LogoKey {
		t.Errorf("GetGame().LogoURL = %v", got.LogoURL)
	}
	if pub.count() != 2 {
		t.Errorf("published %d events, want 2", pub.count())
	}

	if _, err := svc.UploadGameLogo(ctx, game.ID, strings.NewReader("x"), "text/plain"); !errors.Is(err, ErrLogoInvalidType) {
		t.Errorf("text/plain error = %v, want ErrLogoInvalidType", err)
	}
	if _, err := svc.UploadGameLogo(ctx, 777, strings.NewReader("x"), "image/png"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("missing game error = %v, want ErrGameNotFound", err)
	}
}

func TestUploadGameLogoWithoutStorage(t *testing.T) {
	svc, _, _ := newTestGameService(t)
	game, _ := svc.CreateGame(context.Background(), CreateGameInput{Name: "chess"})

	_, err := svc.UploadGameLogo(context.Background(), game.ID, strings.NewReader("x"), "image/png")
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("UploadGameLogo() error = %v, want ErrStorageUnavailable", err)
	}
}
