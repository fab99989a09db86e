package session

import (
	"sync"
	"time"

	"spacexdash/internal/model"
)

// State 会话重算状态
type State int

const (
	StateIdle State = iota
	StateRecomputing
)

func (s State) String() string {
	if s == StateRecomputing {
		return "recomputing"
	}
	return "idle"
}

// Session 单个页面会话：持有控件当前取值与修订号
//
// 同一会话内的变更串行执行；不同会话互不影响。
type Session struct {
	id string

	mu        sync.Mutex
	selection model.Selection
	revision  uint64
	state     State
	lastSeen  time.Time
}

// Snapshot 会话在某次变更完成后的只读快照
type Snapshot struct {
	ID        string          `json:"sessionId"`
	Selection model.Selection `json:"selection"`
	Revision  uint64          `json:"revision"`
}

// ID 会话 ID
func (s *Session) ID() string {
	return s.id
}

// Snapshot 读取当前快照
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{ID: s.id, Selection: s.selection, Revision: s.revision}
}

// State 当前状态
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Update 应用一次控件变更并同步重算
//
// apply 在副本上修改选择，失败时会话保持不变；recompute 以新选择同步执行，
// 成功后选择与修订号一起提交。状态在执行期间为 Recomputing，返回前回到 Idle。
func (s *Session) Update(apply func(*model.Selection) error, recompute func(model.Selection, uint64) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateRecomputing
	defer func() { s.state = StateIdle }()

	next := s.selection
	if apply != nil {
		if err := apply(&next); err != nil {
			return Snapshot{ID: s.id, Selection: s.selection, Revision: s.revision}, err
		}
	}

	rev := s.revision + 1
	if recompute != nil {
		if err := recompute(next, rev); err != nil {
			return Snapshot{ID: s.id, Selection: s.selection, Revision: s.revision}, err
		}
	}

	s.selection = next
	s.revision = rev
	return Snapshot{ID: s.id, Selection: s.selection, Revision: s.revision}, nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}
