package memory

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
)

type ProfileRepository struct{ s *Store }

func (r ProfileRepository) GetByID(_ context.Context, id int64) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.profiles[id]; ok {
		return &p, nil
	}
	return nil, common.ErrorNotFound
}

func (r ProfileRepository) GetByUsername(_ context.Context, username string) (*models.Profile, error) {
	return r.find(func(p models.Profile) bool { return p.Username == username })
}

func (r ProfileRepository) GetByUserID(_ context.Context, userID string) (*models.Profile, error) {
	return r.find(func(p models.Profile) bool { return p.UserID == userID })
}

func (r ProfileRepository) find(match func(models.Profile) bool) (*models.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.profiles {
		if match(p) {
			return &p, nil
		}
	}
	return nil, common.ErrorNotFound
}

type DiaryRepository struct{ s *Store }

func (r DiaryRepository) GetByID(_ context.Context, id int64) (*models.Diary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if d, ok := r.s.diaries[id]; ok {
		return &d, nil
	}
	return nil, common.ErrorNotFound
}

func (r DiaryRepository) ListByProfile(_ context.Context, profileID int64) ([]models.Diary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Diary, 0)
	for _, d := range r.s.diaries {
		if d.ProfileID == profileID {
			out = append(out, d)
		}
	}
	slices.SortFunc(out, newestFirst)
	return out, nil
}

// ListFeed treats a negative offset as zero.
func (r DiaryRepository) ListFeed(_ context.Context, filter visibility.FeedFilter, limit, offset int) ([]models.DiaryWithOwner, error) {
	rows := r.admitted(filter)

	offset = max(offset, 0)
	if offset >= len(rows) || limit <= 0 {
		return []models.DiaryWithOwner{}, nil
	}
	end := min(offset+limit, len(rows))
	return slices.Clone(rows[offset:end]), nil
}

func (r DiaryRepository) CountFeed(_ context.Context, filter visibility.FeedFilter) (int64, error) {
	return int64(len(r.admitted(filter))), nil
}

func (r DiaryRepository) admitted(filter visibility.FeedFilter) []models.DiaryWithOwner {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var rows []models.DiaryWithOwner
	for _, d := range r.s.diaries {
		owner, ok := r.s.profiles[d.ProfileID]
		if !ok {
			continue
		}
		if filter.Admits(d, owner) {
			rows = append(rows, models.DiaryWithOwner{Diary: d, Owner: owner})
		}
	}
	slices.SortFunc(rows, func(x, y models.DiaryWithOwner) int {
		return newestFirst(x.Diary, y.Diary)
	})
	return rows
}

type FriendRepository struct{ s *Store }

// FriendIDsOf returns ids in ascending order.
func (r FriendRepository) FriendIDsOf(_ context.Context, profileID int64) ([]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ids := make([]int64, 0)
	for _, f := range r.s.friends {
		if f.ProfileAID == profileID || f.ProfileBID == profileID {
			ids = append(ids, f.Other(profileID))
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (r FriendRepository) AreFriends(_ context.Context, a, b int64) (bool, error) {
	if a == b {
		return false, nil
	}
	lo, hi := models.CanonicalPair(a, b)

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.friends[pair{lo, hi}]
	return ok, nil
}
