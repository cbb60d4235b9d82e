// Package memory is an in-process implementation of the profile, diary and
// friendship repositories. It backs the server when started with the
// "memory" DSN and serves as the reference store in feed tests.
package memory

import (
	"cmp"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
)

var (
	ErrDuplicate        = errors.New("already exists")
	ErrUnknownProfile   = errors.New("unknown profile")
	ErrSelfFriendship   = errors.New("cannot befriend oneself")
	ErrFriendshipExists = errors.New("friendship already exists")
)

type pair struct{ a, b int64 }

// Store keeps everything in maps guarded by one RWMutex. Reads never mutate.
type Store struct {
	mu       sync.RWMutex
	profiles map[int64]models.Profile
	diaries  map[int64]models.Diary
	friends  map[pair]models.Friend
	nextEdge int64
}

func New() *Store {
	return &Store{
		profiles: make(map[int64]models.Profile),
		diaries:  make(map[int64]models.Diary),
		friends:  make(map[pair]models.Friend),
	}
}

func (s *Store) AddProfile(p models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[p.ID]; ok {
		return fmt.Errorf("profile %d: %w", p.ID, ErrDuplicate)
	}
	for _, existing := range s.profiles {
		if existing.Username == p.Username {
			return fmt.Errorf("username %q: %w", p.Username, ErrDuplicate)
		}
	}
	s.profiles[p.ID] = p
	return nil
}

func (s *Store) AddDiary(d models.Diary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.profiles[d.ProfileID]; !ok {
		return fmt.Errorf("diary %d owner %d: %w", d.ID, d.ProfileID, ErrUnknownProfile)
	}
	if _, ok := s.diaries[d.ID]; ok {
		return fmt.Errorf("diary %d: %w", d.ID, ErrDuplicate)
	}
	s.diaries[d.ID] = d
	return nil
}

// AddFriendship records an edge between a and b in canonical order.
func (s *Store) AddFriendship(a, b int64) error {
	if a == b {
		return ErrSelfFriendship
	}
	lo, hi := models.CanonicalPair(a, b)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range []int64{lo, hi} {
		if _, ok := s.profiles[id]; !ok {
			return fmt.Errorf("friend %d: %w", id, ErrUnknownProfile)
		}
	}
	key := pair{lo, hi}
	if _, ok := s.friends[key]; ok {
		return ErrFriendshipExists
	}
	s.nextEdge++
	s.friends[key] = models.Friend{ID: s.nextEdge, ProfileAID: lo, ProfileBID: hi}
	return nil
}

// Profiles, Diaries and Friends expose the store through the repository
// interfaces; they share the same maps and lock.
func (s *Store) Profiles() ProfileRepository { return ProfileRepository{s} }
func (s *Store) Diaries() DiaryRepository    { return DiaryRepository{s} }
func (s *Store) Friends() FriendRepository   { return FriendRepository{s} }

func newestFirst(x, y models.Diary) int {
	if c := y.CreatedAt.Compare(x.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(y.ID, x.ID)
}
