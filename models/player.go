package models

import "time"

const (
	PlayerNameMaxLength  = 54
	PlayerEmailMaxLength = 54
)

// Player представляет игрока. Пара (name, email) уникальна.
type Player struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
