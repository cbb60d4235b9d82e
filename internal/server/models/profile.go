// Package models defines server-side data models persisted in the database.
package models

import "time"

// DiaryVisibility is the profile-wide switch that can hide every diary of a
// profile regardless of the per-entry setting.
type DiaryVisibility string

const (
	DiaryVisibilityPublic  DiaryVisibility = "public"
	DiaryVisibilityPrivate DiaryVisibility = "private"
)

type Profile struct {
	ID int64
	// UserID is the identity subject carried by access tokens.
	UserID          string
	Username        string
	DisplayName     string
	AvatarURL       string
	DiaryVisibility DiaryVisibility
	CreatedAt       time.Time
}
