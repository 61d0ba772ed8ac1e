package directory

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"
)

// cacheFence orders cache fills from store reads against the cache writes
// that follow store mutations. Every mutation stamps its id with a fresh
// epoch; a read may only fill ids that were not stamped after it began.
// Stamps are kept for every id ever written.
type cacheFence struct {
	epoch     atomic.Uint64
	lastWrite *xsync.MapOf[string, uint64]
}

func newCacheFence() *cacheFence {
	return &cacheFence{lastWrite: xsync.NewMapOf[string, uint64]()}
}

// begin returns the epoch a store read starts at
func (f *cacheFence) begin() uint64 {
	return f.epoch.Load()
}

// fill runs put unless id was written after the read that started at epoch.
// The check and put happen under the id's lock.
func (f *cacheFence) fill(id string, epoch uint64, put func()) {
	f.lastWrite.Compute(id, func(last uint64, loaded bool) (uint64, bool) {
		if !loaded || last <= epoch {
			put()
		}
		return last, !loaded
	})
}

// write stamps id and runs mutate under the id's lock
func (f *cacheFence) write(id string, mutate func()) {
	f.lastWrite.Compute(id, func(uint64, bool) (uint64, bool) {
		mutate()
		return f.epoch.Add(1), false
	})
}
