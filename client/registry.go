package client

import (
	"sync"
	"time"
)

type request struct {
	ProfileID string
	Accessed  time.Time
}

// mediate access to the requests-map using a mutex,
// since the map is also maintained by a GO-routine
var registry = struct {
	sync.RWMutex
	requests map[string]request // key is IP or domain-action (eg. experience-search)
}{}

// Registry remembers the last relevant request per client,
// used to tell a real page view from a refresh
type Registry struct {
}

func (r Registry) Initialize() {
	registry.requests = make(map[string]request)
}

// Continue reports whether a request counts as a new page view.
// The combination of client and profile already being present means refresh.
func (r Registry) Continue(client string, profileID string) bool {

	// check and update under one lock, otherwise two simultaneous first
	// views of the same client would both count
	registry.Lock()
	defer registry.Unlock()

	found := !(registry.requests[client].ProfileID == profileID)

	// add or update the last (relevant) request
	registry.requests[client] = request{
		ProfileID: profileID,
		Accessed:  time.Now(),
	}

	return found
}

// Flush removes requests from the registry which are older than 15 minutes
// usually called by a GO-routine that runs in a ticker
func (r Registry) Flush() {

	registry.Lock()
	now := time.Now()
	if len(registry.requests) > 5000 {
		// it's safe to just delete expired keys, since iterations over maps are not ordered
		for key, value := range registry.requests {
			if now.Sub(value.Accessed) > 15*time.Minute {
				delete(registry.requests, key)
			}
		}
	}
	registry.Unlock()
}

// Count returns the number of requests currently registered
func (r Registry) Count() int {
	registry.RLock()
	defer registry.RUnlock()
	return len(registry.requests)
}

// Dump returns up to n registered requests (diagnosis)
func (r Registry) Dump(n int) map[string]time.Time {

	dump := make(map[string]time.Time)

	registry.RLock()
	defer registry.RUnlock()

	i := 0
	for key, value := range registry.requests {
		if i >= n {
			break
		}
		dump[key+"_"+value.ProfileID] = value.Accessed
		i++
	}

	return dump
}
