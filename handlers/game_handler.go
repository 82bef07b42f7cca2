package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Dosada05/game-roster/services"
)

const maxLogoSize = 5 << 20 // 5MB

// addPlayerToGameRequest отличает отсутствующее поле от нуля.
type addPlayerToGameRequest struct {
	GameID   *int `json:"game_id"`
	PlayerID *int `json:"player_id"`
}

func (req addPlayerToGameRequest) toInput() (services.AddPlayerToGameInput, error) {
	if req.GameID == nil {
		return services.AddPlayerToGameInput{}, services.ErrGameIDRequired
	}
	if req.PlayerID == nil {
		return services.AddPlayerToGameInput{}, services.ErrPlayerIDRequired
	}
	return services.AddPlayerToGameInput{GameID: *req.GameID, PlayerID: *req.PlayerID}, nil
}

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gs services.GameService) *GameHandler {
	return &GameHandler{gameService: gs}
}

// NewGame godoc
// @Summary Создать игру
// @Tags games
// @Description Имя игры не обязано быть уникальным.
// @Accept json
// @Produce json
// @Param body body services.CreateGameInput true "Название игры"
// @Success 200 {object} map[string]interface{} "status, id, success"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 401 {object} map[string]string "Не авторизован"
// @Failure 422 {object} map[string]interface{} "Ошибка валидации"
// @Security BearerAuth
// @Router /new_game [post]
func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	var input services.CreateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.CreateGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, successResponse(game.ID), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddPlayerToGame godoc
// @Summary Добавить игрока в игру
// @Tags games
// @Description В игре может быть не больше 5 игроков. В ответе id равен id игры.
// @Accept json
// @Produce json
// @Param body body services.AddPlayerToGameInput true "game_id и player_id"
// @Success 200 {object} map[string]interface{} "status, id, success"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 401 {object} map[string]string "Не авторизован"
// @Failure 404 {object} map[string]string "Нет игры или игрока, либо игра заполнена"
// @Failure 422 {object} map[string]interface{} "Не передан game_id или player_id"
// @Security BearerAuth
// @Router /add_player_to_game [post]
func (h *GameHandler) AddPlayerToGame(w http.ResponseWriter, r *http.Request) {
	var req addPlayerToGameRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := h.gameService.AddPlayerToGame(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, successResponse(input.GameID), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetGame godoc
// @Summary Получить игру с игроками
// @Tags games
// @Produce json
// @Param gameID path int true "ID игры"
// @Success 200 {object} map[string]interface{} "game"
// @Failure 400 {object} map[string]string "Некорректный ID"
// @Failure 401 {object} map[string]string "Не авторизован"
// @Failure 404 {object} map[string]string "Игра не найдена"
// @Security BearerAuth
// @Router /games/{gameID} [get]
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UploadGameLogo godoc
// @Summary Загрузить логотип игры
// @Tags games
// @Accept multipart/form-data
// @Produce json
// @Param gameID path int true "ID игры"
// @Param logo formData file true "Файл логотипа (png, jpeg, gif, webp)"
// @Success 200 {object} map[string]interface{} "game"
// @Failure 400 {object} map[string]string "Нет файла или неверный тип"
// @Failure 401 {object} map[string]string "Не авторизован"
// @Failure 404 {object} map[string]string "Игра не найдена"
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Security BearerAuth
// @Router /games/{gameID}/logo [post]
func (h *GameHandler) UploadGameLogo(w http.ResponseWriter, r *http.Request) {
	gameID, err := getIDFromURL(r, "gameID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxLogoSize+1024)
	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			badRequestResponse(w, r, fmt.Errorf("logo must not be larger than %d bytes", maxLogoSize))
			return
		}
		badRequestResponse(w, r, fmt.Errorf("invalid multipart form: %w", err))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		badRequestResponse(w, r, errors.New("form field 'logo' is required"))
		return
	}
	defer file.Close()

	game, err := h.gameService.UploadGameLogo(r.Context(), gameID, file, header.Header.Get("Content-Type"))
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
