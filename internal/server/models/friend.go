package models

import "time"

// Friend is an accepted friendship stored once per unordered pair with
// ProfileAID < ProfileBID.
type Friend struct {
	ID         int64
	ProfileAID int64
	ProfileBID int64
	CreatedAt  time.Time
}

// CanonicalPair orders two profile ids the way friendship rows store them.
func CanonicalPair(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// Other returns the side of the edge that is not profileID.
func (f Friend) Other(profileID int64) int64 {
	if f.ProfileAID == profileID {
		return f.ProfileBID
	}
	return f.ProfileAID
}
