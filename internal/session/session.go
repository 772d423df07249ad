package session

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/config"
	"github.com/sysu-ecnc-dev/campus-recruit/backend/internal/domain"
)

// redis 中只使用这两个键：当前会话对应的用户记录，以及 邮箱 → 用户 的完整目录，
// 两者都以 JSON 存储；键不存在视为冷启动，不是错误
const (
	KeyCurrentUser = "campus_recruit_current_user"
	KeyAllUsers    = "campus_recruit_all_users"
)

var (
	ErrInvalidCredentials = errors.New("邮箱不存在或密码错误")
	ErrEmailTaken         = errors.New("该邮箱已被注册")
	ErrUserNotFound       = errors.New("用户不存在")
)

// Store 是唯一掌握"谁在登录"以及全部用户目录的组件，
// 目录和当前会话常驻内存，写操作同步写回 redis，启动时从 redis 恢复
type Store struct {
	mu        sync.RWMutex
	cfg       *config.Config
	rdb       *redis.Client
	directory map[string]*domain.User
	current   *domain.User
}

func NewStore(cfg *config.Config, rdb *redis.Client) (*Store, error) {
	s := &Store{
		cfg:       cfg,
		rdb:       rdb,
		directory: make(map[string]*domain.User),
	}

	ctx, cancel := s.opContext()
	defer cancel()

	// 恢复用户目录
	raw, err := rdb.Get(ctx, KeyAllUsers).Result()
	switch {
	case err == nil:
		if err := json.Unmarshal([]byte(raw), &s.directory); err != nil {
			return nil, err
		}
	case errors.Is(err, redis.Nil):
		// 冷启动
	default:
		return nil, err
	}

	// 恢复上次保存的会话
	raw, err = rdb.Get(ctx, KeyCurrentUser).Result()
	switch {
	case err == nil:
		user := &domain.User{}
		if err := json.Unmarshal([]byte(raw), user); err != nil {
			return nil, err
		}
		s.current = user
	case errors.Is(err, redis.Nil):
		// 未登录状态启动
	default:
		return nil, err
	}

	return s, nil
}

func (s *Store) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(s.cfg.Redis.OperationExpiration)*time.Minute)
}

// SignUp 创建新用户并将其设为当前会话，邮箱重复时拒绝注册
func (s *Store) SignUp(email, password, name string, role domain.Role) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directory[email]; ok {
		return nil, ErrEmailTaken
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  password,
		Name:      name,
		Role:      role,
		CreatedAt: time.Now(),
	}

	s.directory[email] = user
	s.current = user

	if err := s.persistDirectory(); err != nil {
		return nil, err
	}
	if err := s.persistCurrent(); err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn 只有在目录中存在该邮箱且口令完全一致时才成功，
// 失败时不改动已有会话
func (s *Store) SignIn(email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.directory[email]
	if !ok || user.Password != password {
		return nil, ErrInvalidCredentials
	}

	s.current = user
	if err := s.persistCurrent(); err != nil {
		return nil, err
	}

	return user, nil
}

// SignOut 清除当前会话及其持久化记录，用户目录保留
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil

	ctx, cancel := s.opContext()
	defer cancel()

	return s.rdb.Del(ctx, KeyCurrentUser).Err()
}

// Current 返回最近一次登录、尚未登出的用户，重启后从 redis 恢复。
// HTTP 层的请求身份走 cookie 里的 JWT，不经过这里；
// 这个方法维护的是"会话跨进程重启存活"这条约定本身
func (s *Store) Current() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current
}

func (s *Store) FindByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.directory {
		if user.ID == id {
			return user, nil
		}
	}

	return nil, ErrUserNotFound
}

// All 返回目录中全部用户，按创建时间排序保证输出稳定
func (s *Store) All() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*domain.User, 0, len(s.directory))
	for _, user := range s.directory {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Email < users[j].Email
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users
}

// CreateUser 供管理员和 seed 工具使用，只写目录，不改变当前会话
func (s *Store) CreateUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directory[user.Email]; ok {
		return ErrEmailTaken
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	s.directory[user.Email] = user

	return s.persistDirectory()
}

// DeleteByID 将用户从目录中删除，被删除的用户如果恰好在登录状态则一并登出
func (s *Store) DeleteByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := ""
	for _, user := range s.directory {
		if user.ID == id {
			email = user.Email
			break
		}
	}
	if email == "" {
		return ErrUserNotFound
	}

	delete(s.directory, email)
	if err := s.persistDirectory(); err != nil {
		return err
	}

	if s.current != nil && s.current.ID == id {
		s.current = nil

		ctx, cancel := s.opContext()
		defer cancel()
		return s.rdb.Del(ctx, KeyCurrentUser).Err()
	}

	return nil
}

// persistDirectory 和 persistCurrent 都要求调用方已持有写锁
func (s *Store) persistDirectory() error {
	data, err := json.Marshal(s.directory)
	if err != nil {
		return err
	}

	ctx, cancel := s.opContext()
	defer cancel()

	return s.rdb.Set(ctx, KeyAllUsers, data, 0).Err()
}

func (s *Store) persistCurrent() error {
	data, err := json.Marshal(s.current)
	if err != nil {
		return err
	}

	ctx, cancel := s.opContext()
	defer cancel()

	return s.rdb.Set(ctx, KeyCurrentUser, data, 0).Err()
}
