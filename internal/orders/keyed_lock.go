package orders

import (
	"context"
	"sync"
)

// keyedLock — мьютекс на каждый id с учётом отмены контекста.
// Запись о ключе живёт, пока есть владелец или ожидающие.
type keyedLock struct {
	mu    sync.Mutex
	locks map[int64]*refLock
}

type refLock struct {
	sem  chan struct{}
	refs int
}

func newKeyedLock() *keyedLock {
	return &keyedLock{locks: make(map[int64]*refLock)}
}

// Lock — захватить id; ошибка — только при отмене ctx во время ожидания.
func (k *keyedLock) Lock(ctx context.Context, id int64) (func(), error) {
	k.mu.Lock()
	l, ok := k.locks[id]
	if !ok {
		l = &refLock{sem: make(chan struct{}, 1)}
		k.locks[id] = l
	}
	l.refs++
	k.mu.Unlock()

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(id, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			k.release(id, l)
		})
	}, nil
}

func (k *keyedLock) release(id int64, l *refLock) {
	k.mu.Lock()
	defer k.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(k.locks, id)
	}
}

// size — число ключей с владельцем или ожидающими.
func (k *keyedLock) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
