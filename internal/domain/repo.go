package domain

import "context"

type UsersRepo interface {
	Close()
	Ping(context.Context) error
	CreateUser(ctx context.Context, email string, passHash []byte) (User, error)
	UserByEmail(ctx context.Context, email string) (User, bool, error)
	UserByID(ctx context.Context, id UserID) (User, bool, error)
}

type PostsRepo interface {
	CreatePost(ctx context.Context, owner UserID, text string) (Post, error)
	// Посты владельца в порядке вставки (id ASC)
	PostsByOwner(ctx context.Context, owner UserID) ([]Post, error)
	PostByID(ctx context.Context, id PostID) (Post, bool, error)
	// Удаляет только если пост существует И принадлежит owner.
	// "Нет такой строки" — это false, а не ошибка.
	DeletePost(ctx context.Context, id PostID, owner UserID) (bool, error)
}
