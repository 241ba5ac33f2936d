package mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nowshad-islam-dev/skipq-api/internal/audit"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/media"
	"github.com/nowshad-islam-dev/skipq-api/internal/domain/user"
)

// ErrUpload is returned by Uploader for buffers listed in FailOn.
var ErrUpload = errors.New("upload failed")

type Uploader struct {
	mu      sync.Mutex
	FailOn  map[string]bool
	uploads []Upload
}

type Upload struct {
	Data   []byte
	Folder media.Folder
}

func (u *Uploader) Upload(_ context.Context, data []byte, folder media.Folder) (string, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.uploads = append(u.uploads, Upload{Data: data, Folder: folder})
	if u.FailOn[string(data)] {
		return "", ErrUpload
	}
	return fmt.Sprintf("https://cdn.example/%s/%s", folder, data), nil
}

func (u *Uploader) Uploads() []Upload {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]Upload(nil), u.uploads...)
}

// Limiter locks a key after Max failures. Max of zero never locks.
type Limiter struct {
	mu    sync.Mutex
	Max   int
	Err   error
	fails map[string]int
}

func (l *Limiter) Allowed(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Err != nil {
		return true, l.Err
	}
	return l.Max == 0 || l.fails[key] < l.Max, nil
}

func (l *Limiter) Fail(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fails == nil {
		l.fails = map[string]int{}
	}
	l.fails[key]++
	return l.Err
}

func (l *Limiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.fails, key)
	return l.Err
}

func (l *Limiter) Failures(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fails[key]
}

// AuditSink records dispatched events synchronously.
type AuditSink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *AuditSink) Dispatch(ev audit.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *AuditSink) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}

var (
	_ media.Uploader    = (*Uploader)(nil)
	_ user.LoginLimiter = (*Limiter)(nil)
	_ audit.Sink        = (*AuditSink)(nil)
)
