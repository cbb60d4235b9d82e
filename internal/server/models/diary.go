package models

import "time"

// Visibility is the per-entry audience setting.
type Visibility string

const (
	VisibilityPublic      Visibility = "public"
	VisibilityFriendsOnly Visibility = "friends-only"
	VisibilityPrivate     Visibility = "private"
)

type Diary struct {
	ID        int64
	ProfileID int64
	Title     string
	Content   string
	// Visibility may hold values written by older clients; anything other
	// than the three constants above is treated as not visible.
	Visibility Visibility
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// DiaryWithOwner is a feed row: the entry and the profile that wrote it.
type DiaryWithOwner struct {
	Diary Diary
	Owner Profile
}
