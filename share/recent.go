package share

import (
	"path/filepath"
	"sort"
	"sync"
	"time"

	ttlworker "github.com/FloatTech/ttl"

	"github.com/moyoez/katana/tool"
	"github.com/moyoez/katana/types"
)

const (
	DefaultRecentTTL = 24 * time.Hour
)

// RecentStore keeps the last few successful uploads, newest first.
type RecentStore struct {
	cache     *ttlworker.Cache[string, types.RecentUpload]
	limit     int
	mu        sync.Mutex
	listeners []func([]types.RecentUpload)
	now       func() time.Time
}

// NewRecentStore keeps at most limit uploads, each for ttl. Zero values pick the defaults.
func NewRecentStore(limit int, ttl time.Duration) *RecentStore {
	if limit <= 0 {
		limit = tool.DefaultRecentLimit
	}
	if ttl <= 0 {
		ttl = DefaultRecentTTL
	}
	return &RecentStore{
		cache: ttlworker.NewCache[string, types.RecentUpload](ttl),
		limit: limit,
		now:   time.Now,
	}
}

// Subscribe registers fn to receive the list after every change.
func (s *RecentStore) Subscribe(fn func([]types.RecentUpload)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Record stores a successful upload, keyed by its link.
func (s *RecentStore) Record(path string, result *types.UploadResult) {
	if result == nil || result.Link == "" {
		return
	}
	now := s.now()
	s.mu.Lock()
	s.cache.Set(result.Link, types.RecentUpload{
		Link:       result.Link,
		FileName:   filepath.Base(path),
		UploadedAt: now.UnixNano(),
		MtimeStr:   now.Format("2006-01-02 15:04:05"),
	})
	list := s.trimLocked()
	listeners := append([]func([]types.RecentUpload){}, s.listeners...)
	s.mu.Unlock()

	tool.DefaultLogger.Debugf("[Recent] recorded %s", result.Link)
	for _, fn := range listeners {
		fn(list)
	}
}

// List returns the stored uploads, newest first.
func (s *RecentStore) List() []types.RecentUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *RecentStore) sortedLocked() []types.RecentUpload {
	list := make([]types.RecentUpload, 0, s.limit)
	err := s.cache.Range(func(_ string, v types.RecentUpload) error {
		if v.Link != "" {
			list = append(list, v)
		}
		return nil
	})
	if err != nil {
		return nil
	}
	sort.Slice(list, func(i, j int) bool { return list[i].UploadedAt > list[j].UploadedAt })
	return list
}

// trimLocked drops everything past the limit and returns what is left.
func (s *RecentStore) trimLocked() []types.RecentUpload {
	list := s.sortedLocked()
	if len(list) <= s.limit {
		return list
	}
	for _, old := range list[s.limit:] {
		s.cache.Delete(old.Link)
	}
	return list[:s.limit]
}
