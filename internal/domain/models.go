package domain

import "time"

// Базовые идентификаторы (BIGSERIAL в БД)
type UserID = int64
type PostID = int64

// Пользователь
type User struct {
	ID        UserID    `json:"id"`
	Email     string    `json:"email"`
	PassHash  []byte    `json:"-"` // никогда не отдаём наружу
	CreatedAt time.Time `json:"created_at"`
}

// Пост: короткий текст, принадлежит ровно одному пользователю.
// Владелец фиксируется при создании и не меняется.
type Post struct {
	ID        PostID    `json:"id"`
	OwnerID   UserID    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Краткое представление поста для выдачи списков (и кеша списков)
type PostSummary struct {
	ID        PostID    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Пара "токен + тип" — ответ signup/login
type TokenPair struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // всегда "bearer"
}
