// Package services contains server-side business logic. This file implements
// FeedService, which resolves public and personalised diary feeds and
// single-entry reads under the visibility policy.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/logging"
	"github.com/dmitrijs2005/diaryfeed/internal/server/metrics"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
)

const (
	feedKindPublic   = "public"
	feedKindPersonal = "personal"
)

// FeedService holds only immutable collaborators, so one instance serves
// concurrent requests. Every call reads inside its own read-only transaction
// and nothing is cached between calls.
type FeedService struct {
	tx          dbx.Transactor
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	metrics     *metrics.Metrics
}

// NewFeedService wires a FeedService. m may be nil.
func NewFeedService(tx dbx.Transactor, rm repomanager.RepositoryManager, logger logging.Logger, m *metrics.Metrics) *FeedService {
	return &FeedService{
		tx:          tx,
		repomanager: rm,
		logger:      logger.With("module", "feed"),
		metrics:     m,
	}
}

// GetFeed serves the public feed to anonymous viewers and the personalised
// feed to everyone else.
func (s *FeedService) GetFeed(ctx context.Context, viewer visibility.Viewer, page Page, wantCount bool) (*FeedResult, error) {
	if id, ok := viewer.ProfileID(); ok {
		return s.GetPersonalizedFeed(ctx, id, page, wantCount)
	}
	return s.GetPublicFeed(ctx, page, wantCount)
}

// GetPublicFeed returns public entries of public profiles, newest first.
func (s *FeedService) GetPublicFeed(ctx context.Context, page Page, wantCount bool) (res *FeedResult, err error) {
	defer s.observe(ctx, feedKindPublic, time.Now(), &err)

	err = s.tx.ReadTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var rerr error
		res, rerr = s.readFeed(ctx, tx, visibility.PublicFilter(), page, wantCount)
		return rerr
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GetPersonalizedFeed returns what viewerID may see: public entries of public
// profiles, friends-only entries of public friends, and the viewer's own
// friends-only and private entries. The friend set is read once, in the same
// snapshot as the page and the count.
func (s *FeedService) GetPersonalizedFeed(ctx context.Context, viewerID int64, page Page, wantCount bool) (res *FeedResult, err error) {
	defer s.observe(ctx, feedKindPersonal, time.Now(), &err)

	err = s.tx.ReadTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		ids, ferr := s.repomanager.Friends(tx).FriendIDsOf(ctx, viewerID)
		if ferr != nil {
			return fmt.Errorf("error loading friends: %w", ferr)
		}
		friends := visibility.NewFriendSet(ids)
		s.metrics.ObserveFriendSet(friends.Len())

		var rerr error
		res, rerr = s.readFeed(ctx, tx, visibility.PersonalFilter(viewerID, friends), page, wantCount)
		return rerr
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *FeedService) readFeed(ctx context.Context, tx dbx.DBTX, filter visibility.FeedFilter, page Page, wantCount bool) (*FeedResult, error) {
	repo := s.repomanager.Diaries(tx)

	entries, err := repo.ListFeed(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("error listing feed: %w", err)
	}
	if entries == nil {
		entries = []models.DiaryWithOwner{}
	}

	res := &FeedResult{Entries: entries}
	if wantCount {
		n, err := repo.CountFeed(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("error counting feed: %w", err)
		}
		res.TotalCount = &n
	}
	return res, nil
}

// GetOneIfVisible returns the entry with its owner, or common.ErrorNotFound
// when it does not exist or viewer may not see it.
func (s *FeedService) GetOneIfVisible(ctx context.Context, viewer visibility.Viewer, diaryID int64) (*models.DiaryWithOwner, error) {
	var out *models.DiaryWithOwner

	err := s.tx.ReadTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		diary, err := s.repomanager.Diaries(tx).GetByID(ctx, diaryID)
		if err != nil {
			return err
		}
		owner, ok, err := s.decide(ctx, tx, viewer, *diary)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrorNotFound
		}
		out = &models.DiaryWithOwner{Diary: *diary, Owner: *owner}
		return nil
	})

	s.recordDecision(err)
	if err != nil {
		return nil, s.wrap(ctx, "error loading diary", err)
	}
	return out, nil
}

// CanView applies the visibility policy to diary for viewer, loading the
// owner and, only when it matters, the friendship.
func (s *FeedService) CanView(ctx context.Context, viewer visibility.Viewer, diary models.Diary) (bool, error) {
	var ok bool
	err := s.tx.ReadTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		_, ok, err = s.decide(ctx, tx, viewer, diary)
		return err
	})
	if err != nil {
		return false, s.wrap(ctx, "error checking visibility", err)
	}
	return ok, nil
}

// ListProfileDiaries returns the entries of the profile called username that
// viewer may see, newest first. A profile whose entries are all hidden yields
// an empty list, the same as a profile without entries.
func (s *FeedService) ListProfileDiaries(ctx context.Context, viewer visibility.Viewer, username string) ([]models.DiaryWithOwner, error) {
	out := []models.DiaryWithOwner{}

	err := s.tx.ReadTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		owner, err := s.repomanager.Profiles(tx).GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if owner.DiaryVisibility == models.DiaryVisibilityPrivate && !viewer.Owns(owner.ID) {
			return nil
		}

		isFriend, err := s.friendOf(ctx, tx, viewer, owner)
		if err != nil {
			return err
		}

		diaries, err := s.repomanager.Diaries(tx).ListByProfile(ctx, owner.ID)
		if err != nil {
			return err
		}
		for _, d := range diaries {
			if visibility.CanView(viewer, d, *owner, isFriend) {
				out = append(out, models.DiaryWithOwner{Diary: d, Owner: *owner})
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.wrap(ctx, "error listing profile diaries", err)
	}
	return out, nil
}

// GetProfileDiary returns entry diaryID of the profile called username. An
// entry that belongs to someone else is reported as not found.
func (s *FeedService) GetProfileDiary(ctx context.Context, viewer visibility.Viewer, username string, diaryID int64) (*models.DiaryWithOwner, error) {
	var out *models.DiaryWithOwner

	err := s.tx.ReadTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		owner, err := s.repomanager.Profiles(tx).GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		diary, err := s.repomanager.Diaries(tx).GetByID(ctx, diaryID)
		if err != nil {
			return err
		}
		if diary.ProfileID != owner.ID {
			return common.ErrorNotFound
		}

		isFriend := false
		if visibility.NeedsFriendship(viewer, *diary, *owner) {
			if isFriend, err = s.friendOf(ctx, tx, viewer, owner); err != nil {
				return err
			}
		}
		if !visibility.CanView(viewer, *diary, *owner, isFriend) {
			return common.ErrorNotFound
		}
		out = &models.DiaryWithOwner{Diary: *diary, Owner: *owner}
		return nil
	})

	s.recordDecision(err)
	if err != nil {
		return nil, s.wrap(ctx, "error loading profile diary", err)
	}
	return out, nil
}

// decide loads the owner of diary and evaluates the policy.
func (s *FeedService) decide(ctx context.Context, tx dbx.DBTX, viewer visibility.Viewer, diary models.Diary) (*models.Profile, bool, error) {
	owner, err := s.repomanager.Profiles(tx).GetByID(ctx, diary.ProfileID)
	if err != nil {
		return nil, false, err
	}

	isFriend := false
	if visibility.NeedsFriendship(viewer, diary, *owner) {
		if isFriend, err = s.friendOf(ctx, tx, viewer, owner); err != nil {
			return nil, false, err
		}
	}
	return owner, visibility.CanView(viewer, diary, *owner, isFriend), nil
}

// friendOf reports whether an authenticated viewer other than the owner is
// the owner's friend. Anonymous viewers and the owner skip the lookup.
func (s *FeedService) friendOf(ctx context.Context, tx dbx.DBTX, viewer visibility.Viewer, owner *models.Profile) (bool, error) {
	id, ok := viewer.ProfileID()
	if !ok || id == owner.ID {
		return false, nil
	}
	return s.repomanager.Friends(tx).AreFriends(ctx, id, owner.ID)
}

// wrap passes not-found through untouched and logs everything else.
func (s *FeedService) wrap(ctx context.Context, msg string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	s.logger.Error(ctx, msg, "error", err)
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *FeedService) observe(ctx context.Context, kind string, start time.Time, err *error) {
	s.metrics.ObserveFeed(kind, *err, time.Since(start))
	if *err != nil {
		s.logger.Error(ctx, "feed failed", "kind", kind, "error", *err)
	}
}

func (s *FeedService) recordDecision(err error) {
	switch {
	case err == nil:
		s.metrics.IncrementDecision("visible")
	case errors.Is(err, common.ErrorNotFound):
		s.metrics.IncrementDecision("hidden")
	}
}
