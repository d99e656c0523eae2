package usecase

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// itemLocks serializes read-modify-write cycles per item id. Ids are hashed
// onto a fixed set of mutexes, so unrelated items rarely contend.
type itemLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (l *itemLocks) lock(itemID string) (unlock func()) {
	m := &l.stripes[stripeOf(itemID)]
	m.Lock()
	return m.Unlock
}

// lockAll blocks every item; used by bulk resets.
func (l *itemLocks) lockAll() (unlock func()) {
	for i := range l.stripes {
		l.stripes[i].Lock()
	}
	return func() {
		for i := len(l.stripes) - 1; i >= 0; i-- {
			l.stripes[i].Unlock()
		}
	}
}

func stripeOf(itemID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(itemID))
	return h.Sum32() % lockStripes
}
