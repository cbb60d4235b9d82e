package memory

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/common"
	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"github.com/dmitrijs2005/diaryfeed/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/diaryfeed/internal/server/visibility"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repomanager.RepositoryManager = (*Manager)(nil)

func loadFixture(t *testing.T) *Store {
	t.Helper()
	s, err := LoadSeedFile("testdata/social.yaml")
	require.NoError(t, err)
	return s
}

func ids(rows []models.DiaryWithOwner) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Diary.ID)
	}
	return out
}

func TestLoadSeed_Fixture(t *testing.T) {
	s := loadFixture(t)
	ctx := context.Background()

	p, err := s.Profiles().GetByUsername(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	assert.Equal(t, models.DiaryVisibilityPrivate, p.DiaryVisibility)

	d, err := s.Diaries().GetByID(ctx, 21)
	require.NoError(t, err)
	assert.Equal(t, models.VisibilityFriendsOnly, d.Visibility)
	assert.Equal(t, time.Date(2024, 5, 4, 9, 0, 0, 0, time.UTC), d.CreatedAt.UTC())
}

func TestLoadSeed_DefaultsAndErrors(t *testing.T) {
	s, err := LoadSeed(strings.NewReader("profiles:\n  - {id: 1, username: x}\n"))
	require.NoError(t, err)
	p, err := s.Profiles().GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.DiaryVisibilityPublic, p.DiaryVisibility)

	_, err = LoadSeed(strings.NewReader(""))
	require.NoError(t, err)

	_, err = LoadSeed(strings.NewReader("profiles: [oops"))
	require.Error(t, err)

	_, err = LoadSeed(strings.NewReader("diaries:\n  - {id: 1, profile_id: 9}\n"))
	require.ErrorIs(t, err, ErrUnknownProfile)

	_, err = LoadSeed(strings.NewReader("profiles:\n  - {id: 1, username: x}\nfriends:\n  - [1]\n"))
	require.Error(t, err)

	_, err = LoadSeed(strings.NewReader("profiles:\n  - {id: 1, username: x}\nfriends:\n  - [1, 1]\n"))
	require.ErrorIs(t, err, ErrSelfFriendship)
}

func TestStore_AddRejectsDuplicates(t *testing.T) {
	s := New()
	require.NoError(t, s.AddProfile(models.Profile{ID: 1, Username: "a"}))
	require.NoError(t, s.AddProfile(models.Profile{ID: 2, Username: "b"}))

	assert.ErrorIs(t, s.AddProfile(models.Profile{ID: 1, Username: "c"}), ErrDuplicate)
	assert.ErrorIs(t, s.AddProfile(models.Profile{ID: 3, Username: "a"}), ErrDuplicate)

	require.NoError(t, s.AddDiary(models.Diary{ID: 1, ProfileID: 1}))
	assert.ErrorIs(t, s.AddDiary(models.Diary{ID: 1, ProfileID: 2}), ErrDuplicate)

	require.NoError(t, s.AddFriendship(2, 1))
	assert.ErrorIs(t, s.AddFriendship(1, 2), ErrFriendshipExists)
	assert.ErrorIs(t, s.AddFriendship(1, 9), ErrUnknownProfile)
}

func TestProfiles_NotFound(t *testing.T) {
	s := loadFixture(t)
	ctx := context.Background()

	_, err := s.Profiles().GetByID(ctx, 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.Profiles().GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.Profiles().GetByUserID(ctx, "u-nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, err = s.Diaries().GetByID(ctx, 99)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	p, err := s.Profiles().GetByUserID(ctx, "u-bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", p.Username)
}

func TestFriends_Symmetric(t *testing.T) {
	s := loadFixture(t)
	ctx := context.Background()
	repo := s.Friends()

	for a := int64(1); a <= 4; a++ {
		for b := int64(1); b <= 4; b++ {
			ab, err := repo.AreFriends(ctx, a, b)
			require.NoError(t, err)
			ba, err := repo.AreFriends(ctx, b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "pair %d,%d", a, b)
		}
	}

	ok, _ := repo.AreFriends(ctx, 1, 2)
	assert.True(t, ok)
	ok, _ = repo.AreFriends(ctx, 2, 4)
	assert.False(t, ok)
	ok, _ = repo.AreFriends(ctx, 1, 1)
	assert.False(t, ok)

	got, err := repo.FriendIDsOf(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, got)

	got, err = repo.FriendIDsOf(ctx, 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDiaries_ListByProfile(t *testing.T) {
	s := loadFixture(t)

	got, err := s.Diaries().ListByProfile(context.Background(), 2)
	require.NoError(t, err)
	var gotIDs []int64
	for _, d := range got {
		gotIDs = append(gotIDs, d.ID)
	}
	assert.Equal(t, []int64{22, 21, 20}, gotIDs)
}

func TestDiaries_ListFeed(t *testing.T) {
	s := loadFixture(t)
	ctx := context.Background()
	repo := s.Diaries()

	friendsOfAlice, _ := s.Friends().FriendIDsOf(ctx, 1)

	tests := []struct {
		name   string
		filter visibility.FeedFilter
		want   []int64
	}{
		{"public", visibility.PublicFilter(), []int64{30, 20, 10}},
		{"alice", visibility.PersonalFilter(1, visibility.NewFriendSet(friendsOfAlice)), []int64{30, 21, 12, 11, 20, 10}},
		{"carol", visibility.PersonalFilter(3, visibility.NewFriendSet(nil)), []int64{31, 30, 20, 10}},
		{"dave", visibility.PersonalFilter(4, visibility.NewFriendSet([]int64{1})), []int64{42, 41, 30, 11, 20, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := repo.ListFeed(ctx, tt.filter, 100, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(rows))

			n, err := repo.CountFeed(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.want)), n)

			for _, r := range rows {
				assert.Equal(t, r.Diary.ProfileID, r.Owner.ID)
			}
		})
	}
}

func TestDiaries_ListFeedPaging(t *testing.T) {
	s := loadFixture(t)
	ctx := context.Background()
	repo := s.Diaries()
	f := visibility.PublicFilter()

	rows, err := repo.ListFeed(ctx, f, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{20, 10}, ids(rows))

	rows, err = repo.ListFeed(ctx, f, 2, 3)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	rows, err = repo.ListFeed(ctx, f, 1, -5)
	require.NoError(t, err)
	assert.Equal(t, []int64{30}, ids(rows))
}
