package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Dosada05/game-roster/models"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerConflict = errors.New("player name and email conflict")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error)
	Update(ctx context.Context, player *models.Player) error
	Delete(ctx context.Context, id int) error
	List(ctx context.Context, filter models.ListFilter) ([]models.Player, int, error)
	Count(ctx context.Context) (int, error)
}

type sqlPlayerRepository struct {
	db *sql.DB
}

// NewPlayerRepository работает поверх postgres и sqlite3: запросы используют общий диалект.
func NewPlayerRepository(db *sql.DB) PlayerRepository {
	return &sqlPlayerRepository{db: db}
}

const playerColumns = `id, name, email, created_at, updated_at`

func scanPlayer(row rowScanner, p *models.Player) error {
	return row.Scan(&p.ID, &p.Name, &p.Email, &p.CreatedAt, &p.UpdatedAt)
}

func (r *sqlPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.Email,
		player.CreatedAt,
		player.UpdatedAt,
	).Scan(&player.ID)
	if err != nil {
		if isUniqueViolation(err) { // uniqueness_of_name_and_email
			return ErrPlayerConflict
		}
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}

func (r *sqlPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	var player models.Player
	err := scanPlayer(r.db.QueryRowContext(ctx, query, id), &player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return &player, nil
}

func (r *sqlPlayerRepository) ExistsByNameOrEmail(ctx context.Context, name, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM players WHERE name = $1 OR email = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, name, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check player existence: %w", err)
	}
	return exists, nil
}

func (r *sqlPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `UPDATE players SET name = $1, email = $2, updated_at = $3 WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query, player.Name, player.Email, player.UpdatedAt, player.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrPlayerConflict
		}
		return fmt.Errorf("failed to update player %d: %w", player.ID, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *sqlPlayerRepository) Delete(ctx context.Context, id int) error {
	// Членство в играх удаляется каскадно (ON DELETE CASCADE).
	result, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *sqlPlayerRepository) List(ctx context.Context, filter models.ListFilter) ([]models.Player, int, error) {
	var where strings.Builder
	args := []interface{}{}
	argCounter := 1

	if filter.Search != "" {
		where.WriteString(fmt.Sprintf(` WHERE LOWER(name) LIKE $%d ESCAPE '\' OR LOWER(email) LIKE $%d ESCAPE '\'`, argCounter, argCounter))
		args = append(args, likePattern(filter.Search))
		argCounter++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM players` + where.String()
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count players: %w", err)
	}

	query := `SELECT ` + playerColumns + ` FROM players` + where.String() + ` ORDER BY name ASC, id ASC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT $%d OFFSET $%d`, argCounter, argCounter+1)
		args = append(args, filter.Limit, filter.Offset())
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("failed to scan player row: %w", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating player rows: %w", err)
	}

	return players, total, nil
}

func (r *sqlPlayerRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return n, nil
}
