package models

import "time"

const (
	GameNameMaxLength = 254

	// MaxPlayersPerGame ограничивает число участников одной игры.
	MaxPlayersPerGame = 5
	// MaxGamesViaAdmin ограничивает число игр, создаваемых через админку.
	MaxGamesViaAdmin = 5
)

// Game представляет игру и её участников.
type Game struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo_url,omitempty" db:"-"`

	// Опционально заполняется при запросе с участниками
	Players []Player `json:"players,omitempty" db:"-"`
}
