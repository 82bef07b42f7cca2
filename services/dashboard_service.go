package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/game-roster/models"
	"github.com/Dosada05/game-roster/repositories"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetStats(ctx context.Context) (models.DashboardStats, error)
}

type dashboardService struct {
	playerRepo repositories.PlayerRepository
	gameRepo   repositories.GameRepository
}

func NewDashboardService(playerRepo repositories.PlayerRepository, gameRepo repositories.GameRepository) DashboardService {
	return &dashboardService{
		playerRepo: playerRepo,
		gameRepo:   gameRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.PlayersTotal, err = s.playerRepo.Count(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.GamesTotal, err = s.gameRepo.Count(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.MembershipsTotal, err = s.gameRepo.CountMemberships(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to collect stats: %w", err)
	}

	stats.GamesRemaining = max(0, models.MaxGamesViaAdmin-stats.GamesTotal)
	return stats, nil
}
