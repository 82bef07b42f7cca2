package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Dosada05/game-roster/models"
	"github.com/Dosada05/game-roster/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	defaultAdminPageSize = 100
	maxAdminPageSize     = 500
	// Сколько игр одновременно догружают своих участников.
	gameRowsConcurrency = 4
)

// AdminService обслуживает админку: списки с поиском, правку и удаление.
type AdminService interface {
	ListPlayers(ctx context.Context, filter models.ListFilter) (models.PlayerListResponse, error)
	CreatePlayer(ctx context.Context, input AdminPlayerInput) (*models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input AdminPlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error

	ListGames(ctx context.Context, filter models.ListFilter) (models.GameListResponse, error)
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	UpdateGame(ctx context.Context, id int, input CreateGameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, id int) error
}

type AdminPlayerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type adminService struct {
	playerRepo repositories.PlayerRepository
	gameRepo   repositories.GameRepository
}

func NewAdminService(playerRepo repositories.PlayerRepository, gameRepo repositories.GameRepository) AdminService {
	return &adminService{
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
	}
}

func normalizeFilter(filter models.ListFilter) models.ListFilter {
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultAdminPageSize
	}
	if filter.Limit > maxAdminPageSize {
		filter.Limit = maxAdminPageSize
	}
	return filter
}

func (s *adminService) ListPlayers(ctx context.Context, filter models.ListFilter) (models.PlayerListResponse, error) {
	filter = normalizeFilter(filter)
	players, total, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return models.PlayerListResponse{}, fmt.Errorf("failed to list players: %w", err)
	}
	return models.PlayerListResponse{
		Players:    players,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func validateAdminPlayer(input AdminPlayerInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrPlayerNameEmpty
	}
	if err := validatePlayerFields(input.Name, input.Email); err != nil {
		return err
	}
	addr, err := mail.ParseAddress(input.Email)
	if err != nil || addr.Address != input.Email {
		return ErrEmailInvalid
	}
	return nil
}

func (s *adminService) CreatePlayer(ctx context.Context, input AdminPlayerInput) (*models.Player, error) {
	if err := validateAdminPlayer(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	player := &models.Player{Name: input.Name, Email: input.Email, CreatedAt: now, UpdatedAt: now}
	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerConflict) {
			return nil, ErrPlayerConflict
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return player, nil
}

func (s *adminService) UpdatePlayer(ctx context.Context, id int, input AdminPlayerInput) (*models.Player, error) {
	if err := validateAdminPlayer(input); err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}

	player.Name = input.Name
	player.Email = input.Email
	player.UpdatedAt = time.Now().UTC()

	if err := s.playerRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerConflict):
			return nil, ErrPlayerConflict
		default:
			return nil, fmt.Errorf("failed to update player %d: %w", id, err)
		}
	}
	return player, nil
}

func (s *adminService) DeletePlayer(ctx context.Context, id int) error {
	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return nil
}

// ListGames возвращает игры со строкой имён участников через ", ".
func (s *adminService) ListGames(ctx context.Context, filter models.ListFilter) (models.GameListResponse, error) {
	filter = normalizeFilter(filter)
	games, total, err := s.gameRepo.List(ctx, filter)
	if err != nil {
		return models.GameListResponse{}, fmt.Errorf("failed to list games: %w", err)
	}

	rows := make([]models.GameRow, len(games))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(gameRowsConcurrency)
	for i := range games {
		g.Go(func() error {
			players, err := s.gameRepo.ListPlayers(gCtx, games[i].ID)
			if err != nil {
				return err
			}
			names := make([]string, len(players))
			for j, p := range players {
				names[j] = p.Name
			}
			rows[i] = models.GameRow{
				ID:        games[i].ID,
				Name:      games[i].Name,
				Players:   strings.Join(names, ", "),
				CreatedAt: games[i].CreatedAt,
				UpdatedAt: games[i].UpdatedAt,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.GameListResponse{}, fmt.Errorf("failed to load game players: %w", err)
	}

	return models.GameListResponse{
		Games:      rows,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func validateAdminGameName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrGameNameEmpty
	}
	if utf8.RuneCountInString(name) > models.GameNameMaxLength {
		return ErrGameNameTooLong
	}
	return nil
}

// CreateGame через админку запрещён, если игр уже MaxGamesViaAdmin или больше.
func (s *adminService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	if err := validateAdminGameName(input.Name); err != nil {
		return nil, err
	}

	count, err := s.gameRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}
	if count >= models.MaxGamesViaAdmin {
		return nil, ErrGameLimitReached
	}

	now := time.Now().UTC()
	game := &models.Game{Name: input.Name, CreatedAt: now, UpdatedAt: now}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (s *adminService) UpdateGame(ctx context.Context, id int, input CreateGameInput) (*models.Game, error) {
	if err := validateAdminGameName(input.Name); err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by id %d: %w", id, err)
	}

	game.Name = input.Name
	game.UpdatedAt = time.Now().UTC()
	if err := s.gameRepo.Update(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to update game %d: %w", id, err)
	}
	return game, nil
}

func (s *adminService) DeleteGame(ctx context.Context, id int) error {
	if err := s.gameRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return fmt.Errorf("failed to delete game %d: %w", id, err)
	}
	return nil
}
