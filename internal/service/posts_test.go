package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/EgorLis/micro-posts/internal/domain"
	"github.com/EgorLis/micro-posts/internal/infra/cache/memory"
)

// fakePosts — PostsRepo в памяти со счётчиком обращений на чтение
type fakePosts struct {
	posts    map[domain.PostID]domain.Post
	nextID   int64
	listCnt  int // сколько раз ходили в "БД" за списком
	failNext error
}

func newFakePosts() *fakePosts {
	return &fakePosts{posts: make(map[domain.PostID]domain.Post), nextID: 1}
}

func (f *fakePosts) CreatePost(ctx context.Context, owner domain.UserID, text string) (domain.Post, error) {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return domain.Post{}, err
	}
	p := domain.Post{ID: f.nextID, OwnerID: owner, Text: text, CreatedAt: time.Now()}
	f.nextID++
	f.posts[p.ID] = p
	return p, nil
}

func (f *fakePosts) PostsByOwner(ctx context.Context, owner domain.UserID) ([]domain.Post, error) {
	f.listCnt++
	var res []domain.Post
	// в порядке вставки (id ASC)
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.posts[id]; ok && p.OwnerID == owner {
			res = append(res, p)
		}
	}
	return res, nil
}

func (f *fakePosts) PostByID(ctx context.Context, id domain.PostID) (domain.Post, bool, error) {
	p, ok := f.posts[id]
	return p, ok, nil
}

func (f *fakePosts) DeletePost(ctx context.Context, id domain.PostID, owner domain.UserID) (bool, error) {
	p, ok := f.posts[id]
	if !ok || p.OwnerID != owner {
		return false, nil
	}
	delete(f.posts, id)
	return true, nil
}

func newPostService(repo *fakePosts) *PostService {
	cache := memory.New(domain.PostListTTLSeconds*time.Second, testLogger())
	return NewPosts(testLogger(), repo, cache)
}

func TestCreateThenGet(t *testing.T) {
	repo := newFakePosts()
	svc := newPostService(repo)
	ctx := context.Background()

	id, err := svc.CreatePost(ctx, 1, "hello")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	posts, err := svc.GetPosts(ctx, 1)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != id || posts[0].Text != "hello" {
		t.Fatalf("GetPosts = %+v", posts)
	}
}

// Повторный GetPosts в пределах TTL не ходит в хранилище и отдаёт то же самое
func TestGetPostsUsesCache(t *testing.T) {
	repo := newFakePosts()
	svc := newPostService(repo)
	ctx := context.Background()

	if _, err := svc.CreatePost(ctx, 1, "hello"); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	first, err := svc.GetPosts(ctx, 1)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if repo.listCnt != 1 {
		t.Fatalf("store list calls = %d, want 1", repo.listCnt)
	}

	second, err := svc.GetPosts(ctx, 1)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if repo.listCnt != 1 {
		t.Errorf("store list calls = %d, want still 1 (cache hit)", repo.listCnt)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached list differs: %+v vs %+v", first, second)
	}
}

// Создание поста инвалидирует кеш: следующий GetPosts видит новый пост сразу
func TestCreateInvalidatesCache(t *testing.T) {
	repo := newFakePosts()
	svc := newPostService(repo)
	ctx := context.Background()

	if _, err := svc.CreatePost(ctx, 1, "first"); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if _, err := svc.GetPosts(ctx, 1); err != nil {
		t.Fatalf("GetPosts: %v", err)
	}

	if _, err := svc.CreatePost(ctx, 1, "second"); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	posts, err := svc.GetPosts(ctx, 1)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if len(posts) != 2 {
		t.Errorf("posts after create = %d, want 2 (cache invalidated)", len(posts))
	}
	if repo.listCnt != 2 {
		t.Errorf("store list calls = %d, want 2", repo.listCnt)
	}
}

// Удаление инвалидирует кеш даже в пределах TTL
func TestDeleteInvalidatesCache(t *testing.T) {
	repo := newFakePosts()
	svc := newPostService(repo)
	ctx := context.Background()

	id, err := svc.CreatePost(ctx, 1, "hello")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if _, err := svc.GetPosts(ctx, 1); err != nil {
		t.Fatalf("GetPosts: %v", err)
	}

	if err := svc.DeletePost(ctx, 1, id); err != nil {
		t.Fatalf("DeletePost: %v", err)
	}
	posts, err := svc.GetPosts(ctx, 1)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("posts after delete = %d, want 0", len(posts))
	}
}

// Чужой пост удалить нельзя; отказ неотличим от "поста нет"
func TestDeleteForeignPost(t *testing.T) {
	repo := newFakePosts()
	svc := newPostService(repo)
	ctx := context.Background()

	id, err := svc.CreatePost(ctx, 2, "not yours")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	err = svc.DeletePost(ctx, 1, id)
	if !errors.Is(err, domain.ErrNotFoundOrForbidden) {
		t.Fatalf("DeletePost foreign = %v, want ErrNotFoundOrForbidden", err)
	}
	// и та же ошибка для несуществующего id
	err = svc.DeletePost(ctx, 1, 12345)
	if !errors.Is(err, domain.ErrNotFoundOrForbidden) {
		t.Fatalf("DeletePost missing = %v, want ErrNotFoundOrForbidden", err)
	}

	// пост владельца не пострадал
	posts, err := svc.GetPosts(ctx, 2)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if len(posts) != 1 || posts[0].Text != "not yours" {
		t.Errorf("owner's posts = %+v", posts)
	}
}

// Ошибка хранилища уходит наверх как есть, кеш не трогаем
func TestCreatePostStoreError(t *testing.T) {
	repo := newFakePosts()
	svc := newPostService(repo)
	ctx := context.Background()

	boom := errors.New("insert failed")
	repo.failNext = boom
	if _, err := svc.CreatePost(ctx, 1, "hello"); !errors.Is(err, boom) {
		t.Errorf("CreatePost = %v, want store error", err)
	}
}

// Списки разных пользователей не пересекаются в кеше
func TestGetPostsPerUser(t *testing.T) {
	repo := newFakePosts()
	svc := newPostService(repo)
	ctx := context.Background()

	if _, err := svc.CreatePost(ctx, 1, "mine"); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if _, err := svc.CreatePost(ctx, 2, "theirs"); err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	mine, err := svc.GetPosts(ctx, 1)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	theirs, err := svc.GetPosts(ctx, 2)
	if err != nil {
		t.Fatalf("GetPosts: %v", err)
	}
	if len(mine) != 1 || mine[0].Text != "mine" {
		t.Errorf("user 1 posts = %+v", mine)
	}
	if len(theirs) != 1 || theirs[0].Text != "theirs" {
		t.Errorf("user 2 posts = %+v", theirs)
	}
}
