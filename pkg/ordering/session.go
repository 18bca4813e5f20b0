package ordering

import (
	"crypto/md5"
	"fmt"
	"math/big"
	"time"
)

const sessionIDSpace = 10_000_000

// DeriveSessionID maps a user id and a wall-clock second onto a numeric
// session token. The token space is small enough that collisions are
// possible; callers must check uniqueness against stored orders and surface
// a conflict instead of silently reusing the id.
func DeriveSessionID(userID string, at time.Time) int64 {
	raw := fmt.Sprintf("%s%d", userID, at.Unix())
	sum := md5.Sum([]byte(raw))
	n := new(big.Int).SetBytes(sum[:])
	return n.Mod(n, big.NewInt(sessionIDSpace)).Int64()
}
