package serviceimpl

import "sync"

// UserLocks serializes jar mutations per user. The ledger assumes a
// single writer per user; completions and retargets from concurrent
// requests take this lock before touching jars.
type UserLocks struct {
	locks sync.Map // uuid string -> *sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

func (l *UserLocks) Lock(key string) func() {
	mu, _ := l.locks.LoadOrStore(key, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
