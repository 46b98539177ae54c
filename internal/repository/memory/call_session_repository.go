package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CallSession is the in-memory state for one active call: who owns it and
// which playbook (if any) is selected. Registered before webhooks arrive;
// events for unknown calls are acknowledged silently.
type CallSession struct {
	CallId     string
	OwnerId    uuid.UUID
	PlaybookId *uuid.UUID
	StartedAt  time.Time
}

type CallSessionRepository struct {
	cache *cache.Cache
}

func NewCallSessionRepository() *CallSessionRepository {
	// Sessions expire four hours after the call starts; expired entries are
	// purged every ten minutes.
	c := cache.New(4*time.Hour, 10*time.Minute)
	return &CallSessionRepository{
		cache: c,
	}
}

func (r *CallSessionRepository) Save(session *CallSession) {
	r.cache.Set(session.CallId, session, cache.DefaultExpiration)
}

func (r *CallSessionRepository) Get(callId string) (*CallSession, bool) {
	if x, found := r.cache.Get(callId); found {
		return x.(*CallSession), true
	}
	return nil, false
}

func (r *CallSessionRepository) Delete(callId string) {
	r.cache.Delete(callId)
}
