package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ошибки валидации (422). Конкретные ошибки ниже матчатся через errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	ErrPlayerNameInvalid = &ValidationError{Field: "name", Message: "the player`s name must contain only letters from a to f and numbers from 0 to 9"}
	ErrPlayerNameTooLong = &ValidationError{Field: "name", Message: "player name is too long"}
	ErrEmailTooLong      = &ValidationError{Field: "email", Message: "email is too long"}
	ErrEmailInvalid      = &ValidationError{Field: "email", Message: "enter a valid email address"}
	ErrGameNameTooLong   = &ValidationError{Field: "name", Message: "game name is too long"}
	ErrPlayerNameEmpty   = &ValidationError{Field: "name", Message: "player name is required"}
	ErrGameNameEmpty     = &ValidationError{Field: "name", Message: "game name is required"}
	ErrGameIDRequired    = &ValidationError{Field: "game_id", Message: "field required"}
	ErrPlayerIDRequired  = &ValidationError{Field: "player_id", Message: "field required"}

	// Сообщения ниже возвращаются клиенту как есть (404 + message).
	ErrPlayerAlreadyExists = errors.New("player with such name or email already exists")
	ErrGameNotFound        = errors.New("the game with such id doesn't exist")
	ErrPlayerNotFound      = errors.New("the player with such id doesn't exist")
	ErrGameFull            = errors.New("count of players must be less than 5 or equal 5")

	// Ошибки админки
	ErrPlayerConflict   = errors.New("player with this name and email already exists")
	ErrGameLimitReached = errors.New("maximum number of games reached, adding is not allowed")

	// Ошибки аутентификации
	ErrAuthInvalidCredentials = errors.New("Bad username or password")
	ErrTokenMissing           = errors.New("Missing Authorization Header")
	ErrTokenInvalid           = errors.New("Signature verification failed")
	ErrTokenExpired           = errors.New("Signature has expired")

	// Логотипы
	ErrStorageUnavailable = errors.New("file storage is not configured")
	ErrLogoInvalidType    = errors.New("logo must be a png, jpeg, gif or webp image")
)

// ValidationError описывает невалидное поле входных данных.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
