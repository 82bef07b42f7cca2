package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Dosada05/game-roster/models"
)

var (
	ErrGameNotFound          = errors.New("game not found")
	ErrGameMembershipInvalid = errors.New("game membership references a missing game or player")
)

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	Update(ctx context.Context, game *models.Game) error
	UpdateLogoKey(ctx context.Context, id int, logoKey *string, updatedAt time.Time) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter models.ListFilter) ([]models.Game, int, error)
	Count(ctx context.Context) (int, error)

	CountPlayers(ctx context.Context, gameID int) (int, error)
	AddPlayer(ctx context.Context, gameID, playerID int) (bool, error)
	ListPlayers(ctx context.Context, gameID int) ([]models.Player, error)
	CountMemberships(ctx context.Context) (int, error)
}

type sqlGameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) GameRepository {
	return &sqlGameRepository{db: db}
}

const gameColumns = `id, name, logo_key, created_at, updated_at`

func scanGame(row rowScanner, g *models.Game) error {
	return row.Scan(&g.ID, &g.Name, &g.LogoKey, &g.CreatedAt, &g.UpdatedAt)
}

func (r *sqlGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (name, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query, game.Name, game.CreatedAt, game.UpdatedAt).Scan(&game.ID)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (r *sqlGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id = $1`

	var game models.Game
	err := scanGame(r.db.QueryRowContext(ctx, query, id), &game)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}
	return &game, nil
}

func (r *sqlGameRepository) Update(ctx context.Context, game *models.Game) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE games SET name = $1, updated_at = $2 WHERE id = $3`,
		game.Name, game.UpdatedAt, game.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update game %d: %w", game.ID, err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *sqlGameRepository) UpdateLogoKey(ctx context.Context, id int, logoKey *string, updatedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE games SET logo_key = $1, updated_at = $2 WHERE id = $3`,
		logoKey, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update logo for game %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *sqlGameRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete game %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrGameNotFound)
}

func (r *sqlGameRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Game, int, error) {
	var where strings.Builder
	args := []interface{}{}
	argCounter := 1

	if filter.Search != "" {
		where.WriteString(fmt.Sprintf(` WHERE LOWER(name) LIKE $%d ESCAPE '\'`, argCounter))
		args = append(args, likePattern(filter.Search))
		argCounter++
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count games: %w", err)
	}

	query := `SELECT ` + gameColumns + ` FROM games` + where.String() + ` ORDER BY name ASC, id ASC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	games := make([]models.Game, 0)
	for rows.Next() {
		var g models.Game
		if err := scanGame(rows, &g); err != nil {
			return nil, 0, fmt.Errorf("failed to scan game row: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating game rows: %w", err)
	}

	return games, total, nil
}

func (r *sqlGameRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return n, nil
}

func (r *sqlGameRepository) CountPlayers(ctx context.Context, gameID int) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_players WHERE game_id = $1`, gameID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count players of game %d: %w", gameID, err)
	}
	return n, nil
}

// AddPlayer добавляет связь игра-игрок. Повторное добавление ничего не меняет,
// в этом случае возвращается false.
func (r *sqlGameRepository) AddPlayer(ctx context.Context, gameID, playerID int) (bool, error) {
	query := `
		INSERT INTO game_players (game_id, player_id)
		VALUES ($1, $2)
		ON CONFLICT (game_id, player_id) DO NOTHING`

	result, err := r.db.ExecContext(ctx, query, gameID, playerID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrGameMembershipInvalid
		}
		return false, fmt.Errorf("failed to add player %d to game %d: %w", playerID, gameID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check affected rows: %w", err)
	}
	return rowsAffected > 0, nil
}

func (r *sqlGameRepository) ListPlayers(ctx context.Context, gameID int) ([]models.Player, error) {
	query := `
		SELECT p.id, p.name, p.email, p.created_at, p.updated_at
		FROM players p
		JOIN game_players gp ON gp.player_id = p.id
		WHERE gp.game_id = $1
		ORDER BY p.name ASC, p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players of game %d: %w", gameID, err)
	}
	defer rows.Close()

	players := make([]models.Player, 0, models.MaxPlayersPerGame)
	for rows.Next() {
		var p models.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan game player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game player rows: %w", err)
	}
	return players, nil
}

func (r *sqlGameRepository) CountMemberships(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM game_players`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count memberships: %w", err)
	}
	return n, nil
}
