package visibility

import "github.com/dmitrijs2005/diaryfeed/internal/server/models"

// FriendSet is a viewer's friend ids, fetched once per request and then used
// as a constant-time membership test.
type FriendSet struct {
	ids map[int64]struct{}
}

func NewFriendSet(ids []int64) FriendSet {
	m := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		m[id] = struct{}{}
	}
	return FriendSet{ids: m}
}

func (s FriendSet) Contains(id int64) bool {
	_, ok := s.ids[id]
	return ok
}

func (s FriendSet) Len() int {
	return len(s.ids)
}

// IDs returns the members in no particular order.
func (s FriendSet) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	return out
}

// FeedFilter is the feed selection predicate. An anonymous filter admits the
// public feed; a personal filter admits the union of
//
//  1. public entries of public profiles,
//  2. friends-only entries of public profiles in Friends,
//  3. the viewer's own friends-only entries,
//  4. the viewer's own private entries.
//
// Clauses 3 and 4 ignore the viewer's own diary visibility.
type FeedFilter struct {
	Viewer  Viewer
	Friends FriendSet
}

func PublicFilter() FeedFilter {
	return FeedFilter{Viewer: Anonymous()}
}

func PersonalFilter(viewerID int64, friends FriendSet) FeedFilter {
	return FeedFilter{Viewer: Authenticated(viewerID), Friends: friends}
}

// Admits evaluates the predicate for one row.
func (f FeedFilter) Admits(diary models.Diary, owner models.Profile) bool {
	ownerPublic := owner.DiaryVisibility == models.DiaryVisibilityPublic

	if diary.Visibility == models.VisibilityPublic && ownerPublic {
		return true
	}
	if f.Viewer.IsAnonymous() {
		return false
	}

	switch diary.Visibility {
	case models.VisibilityFriendsOnly:
		if f.Viewer.Owns(diary.ProfileID) {
			return true
		}
		return ownerPublic && f.Friends.Contains(diary.ProfileID)
	case models.VisibilityPrivate:
		return f.Viewer.Owns(diary.ProfileID)
	default:
		return false
	}
}
