package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в transport/web/v1)
var (
	ErrBadParams           = errors.New("bad_params")              // 400
	ErrValidation          = errors.New("validation_failed")       // 422
	ErrEmailTaken          = errors.New("email_taken")             // 409
	ErrInvalidCredentials  = errors.New("invalid_credentials")     // 401; одна ошибка и для "нет такого email", и для "не тот пароль"
	ErrInvalidToken        = errors.New("invalid_token")           // подпись/структура токена не сошлись
	ErrExpiredToken        = errors.New("expired_token")           // exp в прошлом
	ErrUnauth              = errors.New("unauthorized")            // 401
	ErrNotFoundOrForbidden = errors.New("not_found_or_forbidden")  // 404; не раскрываем, существует ли чужой пост
	ErrMethodNotAllowed    = errors.New("method_not_allowed")      // 405
	ErrUnexpected          = errors.New("unexpected")              // 500
)

// Коды для конверта ответа
const (
	ErrCodeBadParams        = 1000
	ErrCodeUnauth           = 1001
	ErrCodeEmailTaken       = 1002
	ErrCodeNotFound         = 1003
	ErrCodeMethodNotAllowed = 1004
	ErrCodeValidation       = 1005
	ErrCodeUnexpected       = 1999
)
