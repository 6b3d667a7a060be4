package models

// Comment is a single comment on a post. Comments are append-only and
// carry their creation instant in unix milliseconds.
type Comment struct {
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Post represents a single image post.
//
// UserID is a foreign key into the users collection; it may dangle if
// the owning record disappears, and readers must tolerate that. Posts
// are never edited or deleted once created.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	Timestamp int64     `json:"timestamp"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
}

// LikedBy reports whether the given user ID is in the post's like set.
func (p *Post) LikedBy(userID string) bool {
	return containsID(p.Likes, userID)
}
