package visibility

import "github.com/dmitrijs2005/diaryfeed/internal/server/models"

// CanView reports whether viewer may read diary written by owner. isFriend
// must say whether viewer and owner are friends; it is only consulted for
// friends-only entries.
func CanView(viewer Viewer, diary models.Diary, owner models.Profile, isFriend bool) bool {
	// The profile-level switch comes first and overrides the entry setting.
	if owner.DiaryVisibility == models.DiaryVisibilityPrivate {
		return viewer.Owns(owner.ID)
	}

	switch diary.Visibility {
	case models.VisibilityPublic:
		return true
	case models.VisibilityFriendsOnly:
		if viewer.IsAnonymous() {
			return false
		}
		if viewer.Owns(owner.ID) {
			return true
		}
		return isFriend
	case models.VisibilityPrivate:
		return viewer.Owns(owner.ID)
	default:
		return false
	}
}

// NeedsFriendship reports whether CanView's answer for this triple depends on
// isFriend, so callers can skip the friendship lookup otherwise.
func NeedsFriendship(viewer Viewer, diary models.Diary, owner models.Profile) bool {
	return diary.Visibility == models.VisibilityFriendsOnly &&
		owner.DiaryVisibility != models.DiaryVisibilityPrivate &&
		!viewer.IsAnonymous() &&
		!viewer.Owns(owner.ID)
}
