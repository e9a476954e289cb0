package controller

import (
	"sync"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

const defaultFeedCapacity = 32

// NoticeFeed is a bounded in-memory notice buffer. Controllers push into it;
// the view endpoint drains it on the next render. When full, the oldest
// notice is dropped.
type NoticeFeed struct {
	mu      sync.Mutex
	cap     int
	notices []domain.Notice
}

// NewNoticeFeed creates a feed holding at most capacity notices.
// capacity <= 0 falls back to a sensible default.
func NewNoticeFeed(capacity int) *NoticeFeed {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	return &NoticeFeed{cap: capacity}
}

// Notify appends a notice, evicting the oldest when the feed is full.
func (f *NoticeFeed) Notify(n domain.Notice) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.notices) >= f.cap {
		f.notices = f.notices[1:]
	}
	f.notices = append(f.notices, n)
}

// Drain returns all pending notices and empties the feed.
func (f *NoticeFeed) Drain() []domain.Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.notices
	f.notices = nil
	if out == nil {
		out = []domain.Notice{}
	}
	return out
}
