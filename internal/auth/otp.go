package auth

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ariefcatur/go-supplychain/internal/redisx"
)

// CodeTTL is how long a one-time code stays valid.
const CodeTTL = 5 * time.Minute

// GenerateCode returns a 6-digit one-time code.
func GenerateCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}

// CodeStore holds one pending code per email. Put overwrites any earlier code
// for the same email; Get never returns an expired code.
type CodeStore interface {
	Put(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, bool, error)
	Delete(ctx context.Context, email string) error
}

// MemCodeStore is the default, process-lifetime store: codes do not survive a
// restart. Expired entries are dropped lazily on read and by a periodic sweep.
type MemCodeStore struct {
	mu      sync.Mutex
	entries map[string]memCode
	now     func() time.Time
}

type memCode struct {
	code    string
	expires time.Time
}

func NewMemCodeStore() *MemCodeStore {
	return &MemCodeStore{entries: map[string]memCode{}, now: time.Now}
}

func (s *MemCodeStore) Put(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = memCode{code: code, expires: s.now().Add(CodeTTL)}
	return nil
}

func (s *MemCodeStore) Get(_ context.Context, email string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[email]
	if !ok {
		return "", false, nil
	}
	if s.now().After(e.expires) {
		delete(s.entries, email)
		return "", false, nil
	}
	return e.code, true, nil
}

func (s *MemCodeStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}

// Sweep drops expired entries until ctx is done.
func (s *MemCodeStore) Sweep(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.mu.Lock()
			now := s.now()
			for email, e := range s.entries {
				if now.After(e.expires) {
					delete(s.entries, email)
				}
			}
			s.mu.Unlock()
		}
	}
}

// RedisCodeStore keeps codes in Redis with a native TTL, for deployments that
// want codes to survive restarts.
type RedisCodeStore struct{ R *redis.Client }

func (s *RedisCodeStore) Put(ctx context.Context, email, code string) error {
	return s.R.Set(ctx, fmt.Sprintf(redisx.KeyOTP, email), code, redisx.TTLOTP).Err()
}

func (s *RedisCodeStore) Get(ctx context.Context, email string) (string, bool, error) {
	v, err := s.R.Get(ctx, fmt.Sprintf(redisx.KeyOTP, email)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisCodeStore) Delete(ctx context.Context, email string) error {
	return s.R.Del(ctx, fmt.Sprintf(redisx.KeyOTP, email)).Err()
}
