package models

import "time"

// ListFilter описывает поиск и пагинацию для списков админки.
type ListFilter struct {
	Search string
	Page   int
	Limit  int
}

func (f ListFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

type PlayerListResponse struct {
	Players    []Player `json:"players"`
	TotalCount int      `json:"total_count"`
	Page       int      `json:"page"`
	Limit      int      `json:"limit"`
}

// GameRow: строка списка игр в админке, Players содержит имена участников через ", ".
type GameRow struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Players   string    `json:"players"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GameListResponse struct {
	Games      []GameRow `json:"games"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
}
