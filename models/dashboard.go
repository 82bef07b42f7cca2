package models

type DashboardStats struct {
	PlayersTotal     int `json:"players_total"`
	GamesTotal       int `json:"games_total"`
	MembershipsTotal int `json:"memberships_total"`
	GamesRemaining   int `json:"games_remaining"`
}
