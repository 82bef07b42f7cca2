package handlers

import (
	"net/http"

	"github.com/Dosada05/game-roster/models"
	"github.com/Dosada05/game-roster/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(s services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: s}
}

func listFilterFromQuery(r *http.Request) models.ListFilter {
	q := r.URL.Query()
	return models.ListFilter{
		Search: q.Get("search"),
		Page:   toInt(q.Get("page"), 1),
		Limit:  toInt(q.Get("limit"), 0),
	}
}

// ListPlayers godoc
// @Summary Список игроков
// @Tags admin
// @Produce json
// @Param search query string false "Поиск по имени или почте"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} models.PlayerListResponse
// @Security BearerAuth
// @Router /admin/players [get]
func (h *AdminHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	res, err := h.adminService.ListPlayers(r.Context(), listFilterFromQuery(r))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, res, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreatePlayer godoc
// @Summary Создать игрока из админки
// @Tags admin
// @Accept json
// @Produce json
// @Param body body services.AdminPlayerInput true "Имя и почта"
// @Success 201 {object} map[string]interface{} "player"
// @Failure 409 {object} map[string]string "Такая пара имя/почта уже есть"
// @Failure 422 {object} map[string]interface{} "Ошибка валидации"
// @Security BearerAuth
// @Router /admin/players [post]
func (h *AdminHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input services.AdminPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.adminService.CreatePlayer(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdatePlayer godoc
// @Summary Изменить игрока
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "ID игрока"
// @Param body body services.AdminPlayerInput true "Имя и почта"
// @Success 200 {object} map[string]interface{} "player"
// @Failure 404 {object} map[string]string "Игрок не найден"
// @Failure 409 {object} map[string]string "Конфликт"
// @Security BearerAuth
// @Router /admin/players/{id} [patch]
func (h *AdminHandler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.AdminPlayerInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.adminService.UpdatePlayer(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePlayer godoc
// @Summary Удалить игрока
// @Tags admin
// @Param id path int true "ID игрока"
// @Success 204 "Удалён"
// @Failure 404 {object} map[string]string "Игрок не найден"
// @Security BearerAuth
// @Router /admin/players/{id} [delete]
func (h *AdminHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.adminService.DeletePlayer(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGames godoc
// @Summary Список игр с участниками
// @Tags admin
// @Produce json
// @Param search query string false "Поиск по названию"
// @Param page query int false "Страница"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} models.GameListResponse
// @Security BearerAuth
// @Router /admin/games [get]
func (h *AdminHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	res, err := h.adminService.ListGames(r.Context(), listFilterFromQuery(r))
	if err != nil {
		serverErrorResponse(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, res, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateGame godoc
// @Summary Создать игру из админки
// @Tags admin
// @Description Запрещено, если игр уже 5 или больше.
// @Accept json
// @Produce json
// @Param body body services.CreateGameInput true "Название"
// @Success 201 {object} map[string]interface{} "game"
// @Failure 403 {object} map[string]string "Достигнут лимит игр"
// @Security BearerAuth
// @Router /admin/games [post]
func (h *AdminHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var input services.CreateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.adminService.CreateGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusCreated, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateGame godoc
// @Summary Переименовать игру
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "ID игры"
// @Param body body services.CreateGameInput true "Название"
// @Success 200 {object} map[string]interface{} "game"
// @Failure 404 {object} map[string]string "Игра не найдена"
// @Security BearerAuth
// @Router /admin/games/{id} [patch]
func (h *AdminHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateGameInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	game, err := h.adminService.UpdateGame(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"game": game}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteGame godoc
// @Summary Удалить игру
// @Tags admin
// @Param id path int true "ID игры"
// @Success 204 "Удалена"
// @Failure 404 {object} map[string]string "Игра не найдена"
// @Security BearerAuth
// @Router /admin/games/{id} [delete]
func (h *AdminHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "id")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.adminService.DeleteGame(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
