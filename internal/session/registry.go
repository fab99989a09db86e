package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"spacexdash/internal/model"
)

// Registry 进程内会话表，过期会话在访问时惰性清理
type Registry struct {
	mu    sync.Mutex
	items map[string]*Session
	ttl   time.Duration
	now   func() time.Time
}

// NewRegistry 创建会话表
func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		items: make(map[string]*Session),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Create 以给定初始选择新建会话
func (r *Registry) Create(initial model.Selection) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.purgeExpiredLocked(now)

	s := &Session{
		id:        uuid.NewString(),
		selection: initial,
		lastSeen:  now,
	}
	r.items[s.id] = s
	return s
}

// Get 获取未过期的会话
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.purgeExpiredLocked(now)

	s, ok := r.items[id]
	if !ok {
		return nil, false
	}
	s.touch(now)
	return s, true
}

// GetOrCreate 获取会话；不存在或已过期时以 initial 新建，第二个返回值表示是否新建
func (r *Registry) GetOrCreate(id string, initial model.Selection) (*Session, bool) {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s, false
		}
	}
	return r.Create(initial), true
}

// Len 当前会话数
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.purgeExpiredLocked(r.now())
	return len(r.items)
}

func (r *Registry) purgeExpiredLocked(now time.Time) {
	for k, s := range r.items {
		if s.expired(now, r.ttl) {
			delete(r.items, k)
		}
	}
}
