// Package models contains data structures for the application's domain records.
//
// Field names in the JSON tags match the persisted layout exactly, so a
// store snapshot written by one backend can be read back by another.
package models

// User represents an account in Lanagram.
//
// Followers and Following hold user IDs and must stay mutual inverses:
// a appears in b.Followers iff b appears in a.Following. A user's own
// ID never appears in either of its own sets.
type User struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Password   string   `json:"password"`
	ProfilePic string   `json:"profilePic,omitempty"`
	Bio        string   `json:"bio,omitempty"`
	Followers  []string `json:"followers"`
	Following  []string `json:"following"`
	IsVerified bool     `json:"isVerified"`

	// BaseFollowers and BaseFollowing are cosmetic counts added to the
	// real relation sizes for display. They have no backing relation
	// records and are absent (zero) for regular accounts.
	BaseFollowers int `json:"baseFollowers,omitempty"`
	BaseFollowing int `json:"baseFollowing,omitempty"`
}

// IsFollowing reports whether the user follows the given user ID.
func (u *User) IsFollowing(userID string) bool {
	return containsID(u.Following, userID)
}

// FollowerCount returns the displayed follower total: base count plus
// the real relation set size.
func (u *User) FollowerCount() int {
	return u.BaseFollowers + len(u.Followers)
}

// FollowingCount returns the displayed following total.
func (u *User) FollowingCount() int {
	return u.BaseFollowing + len(u.Following)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
