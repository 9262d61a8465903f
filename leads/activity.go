// ABOUTME: In-memory activity feed for the console footer
// ABOUTME: Records edits, rollbacks and conversions with ULID-stamped entries
package leads

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ActivityVerb names the action an activity records.
type ActivityVerb string

const (
	VerbUpdated    ActivityVerb = "updated"
	VerbRolledBack ActivityVerb = "rolled back"
	VerbConverted  ActivityVerb = "converted"
)

// Activity is one timeline entry. IDs are ULIDs so entries sort by
// creation time.
type Activity struct {
	ID     string       `json:"id"`
	Verb   ActivityVerb `json:"verb"`
	LeadID string       `json:"lead_id"`
	Detail string       `json:"detail"`
	At     time.Time    `json:"at"`
}

// ActivityFeed keeps a process-lifetime list of activities, newest
// first. Nothing is persisted.
type ActivityFeed struct {
	mu      sync.Mutex
	entropy *rand.Rand
	entries []Activity
}

func NewActivityFeed() *ActivityFeed {
	return &ActivityFeed{entropy: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Record appends an activity entry.
func (f *ActivityFeed) Record(verb ActivityVerb, leadID, detail string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	f.entries = append(f.entries, Activity{
		ID:     ulid.MustNew(ulid.Timestamp(now), ulid.Monotonic(f.entropy, 0)).String(),
		Verb:   verb,
		LeadID: leadID,
		Detail: detail,
		At:     now,
	})
}

// List returns the entries newest first.
func (f *ActivityFeed) List() []Activity {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Activity, len(f.entries))
	for i, entry := range f.entries {
		out[len(f.entries)-1-i] = entry
	}
	return out
}
