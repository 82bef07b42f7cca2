package handlers

import (
	"net/http"

	"github.com/Dosada05/game-roster/middleware"
	"github.com/Dosada05/game-roster/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// @Summary Получить access-токен
// @Tags auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Имя пользователя и пароль"
// @Success 200 {object} map[string]string "access_token"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 401 {object} map[string]string "Неверные имя пользователя или пароль"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"access_token": token}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// User godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "user"
// @Failure 401 {object} map[string]string "Нет токена или он невалиден"
// @Security BearerAuth
// @Router /user [get]
func (h *AuthHandler) User(w http.ResponseWriter, r *http.Request) {
	h.writeCurrentUser(w, r)
}

// ProtectedExample godoc
// @Summary Пример защищённого маршрута
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "user"
// @Failure 401 {object} map[string]string "Нет токена или он невалиден"
// @Security BearerAuth
// @Router /protected_example [get]
func (h *AuthHandler) ProtectedExample(w http.ResponseWriter, r *http.Request) {
	h.writeCurrentUser(w, r)
}

func (h *AuthHandler) writeCurrentUser(w http.ResponseWriter, r *http.Request) {
	subject, err := middleware.GetSubjectFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, services.ErrTokenMissing.Error())
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"user": subject}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
