package handlers

import (
	"net/http"

	"github.com/Dosada05/game-roster/services"
)

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(ps services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: ps}
}

// NewPlayer godoc
// @Summary Создать игрока
// @Tags players
// @Description Имя только из символов a-f и цифр. Игрок с таким же именем или почтой уже существовать не должен.
// @Accept json
// @Produce json
// @Param body body services.CreatePlayerInput true "Имя и почта игрока"
// @Success 200 {object} map[string]interface{} "status, id, success"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 401 {object} map[string]string "Не авторизован"
// @Failure 404 {object} map[string]string "Игрок с таким именем или почтой уже есть"
// @Failure 422 {object} map[string]interface{} "Ошибка валидации"
// @Security BearerAuth
// @Router /new_player [post]
func (h *PlayerHandler) NewPlayer(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.playerService.CreatePlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, successResponse(player.ID), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
