package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"time"
	"unicode/utf8"

	"github.com/Dosada05/game-roster/events"
	"github.com/Dosada05/game-roster/models"
	"github.com/Dosada05/game-roster/repositories"
	"github.com/Dosada05/game-roster/storage"
)

// EventPublisher рассылает события подписчикам комнаты (см. events.Hub).
type EventPublisher interface {
	BroadcastToRoom(roomID string, message interface{})
}

type GameService interface {
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	GetGame(ctx context.Context, id int) (*models.Game, error)
	AddPlayerToGame(ctx context.Context, input AddPlayerToGameInput) error
	UploadGameLogo(ctx context.Context, gameID int, file io.Reader, contentType string) (*models.Game, error)
}

type CreateGameInput struct {
	Name string `json:"name"`
}

type AddPlayerToGameInput struct {
	GameID   int `json:"game_id"`
	PlayerID int `json:"player_id"`
}

var logoExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type gameService struct {
	gameRepo   repositories.GameRepository
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader // nil, если хранилище не настроено
	publisher  EventPublisher
	logger     *slog.Logger
}

func NewGameService(
	gameRepo repositories.GameRepository,
	playerRepo repositories.PlayerRepository,
	uploader storage.FileUploader,
	publisher EventPublisher,
	logger *slog.Logger,
) GameService {
	if logger == nil {
		logger = slog.Default()
	}
	return &gameService{
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		uploader:   uploader,
		publisher:  publisher,
		logger:     logger,
	}
}

// CreateGame создаёт игру без проверки уникальности имени и без лимита на число игр.
func (s *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	if utf8.RuneCountInString(input.Name) > models.GameNameMaxLength {
		return nil, ErrGameNameTooLong
	}

	now := time.Now().UTC()
	game := &models.Game{
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (s *gameService) GetGame(ctx context.Context, id int) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by id %d: %w", id, err)
	}

	players, err := s.gameRepo.ListPlayers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get players of game %d: %w", id, err)
	}
	game.Players = players
	s.setLogoURL(game)

	return game, nil
}

// AddPlayerToGame проверяет игру, затем вместимость, затем игрока, и только
// после этого пишет связь. Повторное добавление уже состоящего игрока не ошибка.
func (s *gameService) AddPlayerToGame(ctx context.Context, input AddPlayerToGameInput) error {
	if _, err := s.gameRepo.GetByID(ctx, input.GameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to get game by id %d: %w", input.GameID, err)
	}

	count, err := s.gameRepo.CountPlayers(ctx, input.GameID)
	if err != nil {
		return fmt.Errorf("failed to count players of game %d: %w", input.GameID, err)
	}
	if count >= models.MaxPlayersPerGame {
		return ErrGameFull
	}

	player, err := s.playerRepo.GetByID(ctx, input.PlayerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to get player by id %d: %w", input.PlayerID, err)
	}

	added, err := s.gameRepo.AddPlayer(ctx, input.GameID, input.PlayerID)
	if err != nil {
		// Игру или игрока могли удалить между проверкой и вставкой.
		if errors.Is(err, repositories.ErrGameMembershipInvalid) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to add player %d to game %d: %w", input.PlayerID, input.GameID, err)
	}

	if added && s.publisher != nil {
		room := events.GameRoom(input.GameID)
		s.publisher.BroadcastToRoom(room, events.Message{
			Type:    events.TypePlayerAdded,
			Payload: map[string]interface{}{"game_id": input.GameID, "player": player},
			RoomID:  room,
		})
	}

	return nil
}

func (s *gameService) UploadGameLogo(ctx context.Context, gameID int, file io.Reader, contentType string) (*models.Game, error) {
	if s.uploader == nil {
		return nil, ErrStorageUnavailable
	}
	ext, ok := logoExtensions[contentType]
	if !ok {
		return nil, ErrLogoInvalidType
	}

	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by id %d: %w", gameID, err)
	}

	key := path.Join("games", fmt.Sprint(gameID), fmt.Sprintf("logo_%d%s", time.Now().UnixNano(), ext))
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload logo for game %d: %w", gameID, err)
	}

	now := time.Now().UTC()
	if err := s.gameRepo.UpdateLogoKey(ctx, gameID, &key, now); err != nil {
		// Не оставляем осиротевший объект в бакете.
		if delErr := s.uploader.Delete(ctx, key); delErr != nil {
			s.logger.Error("failed to delete uploaded logo after db error", slog.String("key", key), slog.Any("error", delErr))
		}
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to save logo for game %d: %w", gameID, err)
	}

	if game.LogoKey != nil && *game.LogoKey != "" {
		if err := s.uploader.Delete(ctx, *game.LogoKey); err != nil {
			s.logger.Warn("failed to delete previous logo", slog.String("key", *game.LogoKey), slog.Any("error", err))
		}
	}

	game.LogoKey = &key
	game.UpdatedAt = now
	s.setLogoURL(game)

	if s.publisher != nil {
		room := events.GameRoom(gameID)
		s.publisher.BroadcastToRoom(room, events.Message{Type: events.TypeGameUpdated, Payload: game, RoomID: room})
	}

	return game, nil
}

func (s *gameService) setLogoURL(game *models.Game) {
	if s.uploader == nil || game.LogoKey == nil || *game.LogoKey == "" {
		return
	}
	logoURL := s.uploader.GetPublicURL(*game.LogoKey)
	if logoURL != "" {
		game.LogoURL = &logoURL
	}
}
