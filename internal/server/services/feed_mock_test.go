package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/dbx"
	"github.com/dmitrijs2005/diaryfeed/internal/logging"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/mocks"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockRepos struct {
	manager  *mocks.MockRepositoryManager
	profiles *mocks.MockProfileRepository
	diaries  *mocks.MockDiaryRepository
	friends  *mocks.MockFriendRepository
}

func newMockRepos(t *testing.T) *mockRepos {
	t.Helper()
	ctrl := gomock.NewController(t)
	r := &mockRepos{
		manager:  mocks.NewMockRepositoryManager(ctrl),
		profiles: mocks.NewMockProfileRepository(ctrl),
		diaries:  mocks.NewMockDiaryRepository(ctrl),
		friends:  mocks.NewMockFriendRepository(ctrl),
	}
	r.manager.EXPECT().Profiles(gomock.Any()).Return(r.profiles).AnyTimes()
	r.manager.EXPECT().Diaries(gomock.Any()).Return(r.diaries).AnyTimes()
	r.manager.EXPECT().Friends(gomock.Any()).Return(r.friends).AnyTimes()
	return r
}

func (r *mockRepos) service() *FeedService {
	return NewFeedService(dbx.NoTx{}, r.manager, logging.Nop{}, nil)
}

var (
	publicOwner = &models.Profile{ID: 7, Username: "owner", DiaryVisibility: models.DiaryVisibilityPublic}
	friendsOnly = &models.Diary{ID: 70, ProfileID: 7, Visibility: models.VisibilityFriendsOnly}
	errBoom     = errors.New("boom")
)

func TestGetPersonalizedFeed_FriendLookupFails(t *testing.T) {
	r := newMockRepos(t)
	r.friends.EXPECT().FriendIDsOf(gomock.Any(), int64(1)).Return(nil, errBoom)

	_, err := r.service().GetPersonalizedFeed(context.Background(), 1, DefaultPage(), true)
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestGetPersonalizedFeed_PassesFriendSet(t *testing.T) {
	r := newMockRepos(t)
	r.friends.EXPECT().FriendIDsOf(gomock.Any(), int64(1)).Return([]int64{2, 3}, nil).Times(1)
	r.diaries.EXPECT().ListFeed(gomock.Any(), gomock.Any(), 5, 10).DoAndReturn(
		func(_ context.Context, f visibility.FeedFilter, _, _ int) ([]models.DiaryWithOwner, error) {
			assert.True(t, f.Viewer.Owns(1))
			assert.True(t, f.Friends.Contains(2))
			assert.True(t, f.Friends.Contains(3))
			assert.False(t, f.Friends.Contains(4))
			return nil, nil
		})

	res, err := r.service().GetPersonalizedFeed(context.Background(), 1, Page{Limit: 5, Offset: 10}, false)
	require.NoError(t, err)
	assert.NotNil(t, res.Entries)
	assert.Nil(t, res.TotalCount)
}

func TestGetPublicFeed_CountFails(t *testing.T) {
	r := newMockRepos(t)
	r.diaries.EXPECT().ListFeed(gomock.Any(), visibility.PublicFilter(), 20, 0).Return([]models.DiaryWithOwner{}, nil)
	r.diaries.EXPECT().CountFeed(gomock.Any(), visibility.PublicFilter()).Return(int64(0), errBoom)

	_, err := r.service().GetPublicFeed(context.Background(), DefaultPage(), true)
	require.ErrorIs(t, err, errBoom)
}

func TestGetOneIfVisible_StoreErrorIsNotNotFound(t *testing.T) {
	r := newMockRepos(t)
	r.diaries.EXPECT().GetByID(gomock.Any(), int64(70)).Return(nil, errBoom)

	_, err := r.service().GetOneIfVisible(context.Background(), visibility.Anonymous(), 70)
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestGetOneIfVisible_SkipsFriendLookup(t *testing.T) {
	tests := []struct {
		name   string
		viewer visibility.Viewer
		found  bool
	}{
		{"anonymous", visibility.Anonymous(), false},
		{"owner", visibility.Authenticated(7), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockRepos(t)
			r.diaries.EXPECT().GetByID(gomock.Any(), int64(70)).Return(friendsOnly, nil)
			r.profiles.EXPECT().GetByID(gomock.Any(), int64(7)).Return(publicOwner, nil)
			// no AreFriends expectation: a call fails the test

			_, err := r.service().GetOneIfVisible(context.Background(), tt.viewer, 70)
			if tt.found {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, common.ErrorNotFound)
			}
		})
	}
}

func TestCanView_FriendshipDecides(t *testing.T) {
	for _, friends := range []bool{true, false} {
		r := newMockRepos(t)
		r.profiles.EXPECT().GetByID(gomock.Any(), int64(7)).Return(publicOwner, nil)
		r.friends.EXPECT().AreFriends(gomock.Any(), int64(9), int64(7)).Return(friends, nil)

		ok, err := r.service().CanView(context.Background(), visibility.Authenticated(9), *friendsOnly)
		require.NoError(t, err)
		assert.Equal(t, friends, ok)
	}
}

func TestCanView_FriendLookupFails(t *testing.T) {
	r := newMockRepos(t)
	r.profiles.EXPECT().GetByID(gomock.Any(), int64(7)).Return(publicOwner, nil)
	r.friends.EXPECT().AreFriends(gomock.Any(), int64(9), int64(7)).Return(false, errBoom)

	_, err := r.service().CanView(context.Background(), visibility.Authenticated(9), *friendsOnly)
	require.ErrorIs(t, err, errBoom)
}

func TestListProfileDiaries_OneFriendLookup(t *testing.T) {
	r := newMockRepos(t)
	r.profiles.EXPECT().GetByUsername(gomock.Any(), "owner").Return(publicOwner, nil)
	r.friends.EXPECT().AreFriends(gomock.Any(), int64(9), int64(7)).Return(true, nil).Times(1)
	r.diaries.EXPECT().ListByProfile(gomock.Any(), int64(7)).Return([]models.Diary{
		{ID: 3, ProfileID: 7, Visibility: models.VisibilityPrivate},
		{ID: 2, ProfileID: 7, Visibility: models.VisibilityFriendsOnly},
		{ID: 1, ProfileID: 7, Visibility: models.VisibilityFriendsOnly},
	}, nil)

	got, err := r.service().ListProfileDiaries(context.Background(), visibility.Authenticated(9), "owner")
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, entryIDs(got))
}

func TestListProfileDiaries_PrivateProfileShortCircuits(t *testing.T) {
	r := newMockRepos(t)
	r.profiles.EXPECT().GetByUsername(gomock.Any(), "hidden").Return(&models.Profile{
		ID: 8, Username: "hidden", DiaryVisibility: models.DiaryVisibilityPrivate,
	}, nil)

	got, err := r.service().ListProfileDiaries(context.Background(), visibility.Authenticated(9), "hidden")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetPersonalizedFeed_OneSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	r := newMockRepos(t)
	r.friends.EXPECT().FriendIDsOf(gomock.Any(), int64(1)).Return([]int64{}, nil)
	r.diaries.EXPECT().ListFeed(gomock.Any(), gomock.Any(), 20, 0).Return([]models.DiaryWithOwner{}, nil)
	r.diaries.EXPECT().CountFeed(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	svc := NewFeedService(dbx.NewSQLTransactor(db), r.manager, logging.Nop{}, nil)
	res, err := svc.GetPersonalizedFeed(context.Background(), 1, DefaultPage(), true)
	require.NoError(t, err)
	require.NotNil(t, res.TotalCount)
	assert.Equal(t, int64(0), *res.TotalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPublicFeed_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	r := newMockRepos(t)
	r.diaries.EXPECT().ListFeed(gomock.Any(), gomock.Any(), 20, 0).Return(nil, errBoom)

	svc := NewFeedService(dbx.NewSQLTransactor(db), r.manager, logging.Nop{}, nil)
	_, err = svc.GetPublicFeed(context.Background(), DefaultPage(), false)
	require.ErrorIs(t, err, errBoom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
