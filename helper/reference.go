package helper

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"time"

	"tourhub/constants"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	refMu   sync.Mutex
	refLast int64
)

// GenerateReference returns a booking reference: the TH prefix, the current
// time in milliseconds as upper-case base 36, and four random base 36 chars.
// The time segment strictly increases within a process: calls landing in the
// same millisecond borrow the next one.
func GenerateReference() string {
	return constants.BOOKING_REFERENCE_PREFIX + referenceTime() + randomBase36(4)
}

func referenceTime() string {
	now := time.Now().UnixMilli()
	refMu.Lock()
	if now <= refLast {
		now = refLast + 1
	}
	refLast = now
	refMu.Unlock()
	return strings.ToUpper(strconv.FormatInt(now, 36))
}

func randomBase36(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	limit := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		sb.WriteByte(base36[idx.Int64()])
	}
	return sb.String()
}
