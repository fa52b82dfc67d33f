package domain

import (
	"regexp"
	"strings"
)

// Лимит текста поста: 1 МБ в UTF-8 байтах
const MaxPostBytes = 1_000_000

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	// Пароль: мин 8, >=1 цифра, >=1 заглавная, >=1 спецсимвол
	upperRe = regexp.MustCompile(`[A-Z]`)
	digitRe = regexp.MustCompile(`[0-9]`)
	symRe   = regexp.MustCompile(`[^A-Za-z0-9]`)
)

func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

func ValidPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	return upperRe.MatchString(s) && digitRe.MatchString(s) && symRe.MatchString(s)
}

// ValidPostText: непустой текст не длиннее MaxPostBytes.
func ValidPostText(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return len(s) <= MaxPostBytes
}
