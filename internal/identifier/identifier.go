// Package identifier produces collision-resistant string identifiers
// for new entities.
package identifier

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Category prefixes used across the application.
const (
	PrefixMeeting   = "mtg"
	PrefixIssue     = "iss"
	PrefixQuickNote = "note"
)

const suffixLen = 9

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(seed()))
)

// seed derives the generator seed from a random UUID so that separate
// process runs within the same millisecond still diverge.
func seed() int64 {
	id := uuid.New()
	var s int64
	for _, b := range id[:8] {
		s = s<<8 | int64(b)
	}
	return s ^ time.Now().UnixNano()
}

// New returns an identifier of the form
// "<prefix>-<unix millis>-<9 random base36 chars>". Identifiers are
// not cryptographically unique, but collisions are negligible for
// single-user interactive use. The format matches ids already stored
// by earlier versions, so existing data keeps importing cleanly.
func New(prefix string) string {
	var sb strings.Builder
	mu.Lock()
	for i := 0; i < suffixLen; i++ {
		sb.WriteByte(base36[rng.Intn(len(base36))])
	}
	mu.Unlock()
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), sb.String())
}
