package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/Dosada05/game-roster/models"
	"github.com/Dosada05/game-roster/repositories"
)

// Имя игрока: только символы a-f и цифры.
var playerNamePattern = regexp.MustCompile(`^[a-f0-9]+$`)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
}

type CreatePlayerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	if !playerNamePattern.MatchString(input.Name) {
		return nil, ErrPlayerNameInvalid
	}
	if err := validatePlayerFields(input.Name, input.Email); err != nil {
		return nil, err
	}

	// Дубликатом считается совпадение имени ИЛИ почты, а не только пары.
	exists, err := s.playerRepo.ExistsByNameOrEmail(ctx, input.Name, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing players: %w", err)
	}
	if exists {
		return nil, ErrPlayerAlreadyExists
	}

	now := time.Now().UTC()
	player := &models.Player{
		Name:      input.Name,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerConflict) {
			return nil, ErrPlayerAlreadyExists
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func validatePlayerFields(name, email string) error {
	if utf8.RuneCountInString(name) > models.PlayerNameMaxLength {
		return ErrPlayerNameTooLong
	}
	if utf8.RuneCountInString(email) > models.PlayerEmailMaxLength {
		return ErrEmailTooLong
	}
	return nil
}
