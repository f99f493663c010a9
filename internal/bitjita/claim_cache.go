package bitjita

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// claimCache is an in-memory per-run cache of claim records.
// A singleflight.Group prevents duplicate in-flight fetches for the same id,
// so each distinct claim is queried at most once per run. Failed fetches are
// not cached; the run-level policy is to skip the claim, not to retry it.
type claimCache struct {
	mu      sync.RWMutex
	entries map[string]*Claim
	group   singleflight.Group
}

func newClaimCache() *claimCache {
	return &claimCache{entries: make(map[string]*Claim)}
}

func (cc *claimCache) get(claimID string, fetch func() (*Claim, error)) (*Claim, error) {
	cc.mu.RLock()
	if c, ok := cc.entries[claimID]; ok {
		cc.mu.RUnlock()
		return c, nil
	}
	cc.mu.RUnlock()

	v, err, _ := cc.group.Do(claimID, func() (interface{}, error) {
		claim, err := fetch()
		if err != nil {
			return nil, err
		}
		cc.mu.Lock()
		cc.entries[claimID] = claim
		cc.mu.Unlock()
		return claim, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Claim), nil
}
