package memory

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/diaryfeed/internal/server/models"
	"gopkg.in/yaml.v3"
)

// Seed is the YAML layout accepted by LoadSeed:
//
//	profiles:
//	  - {id: 1, user_id: u-1, username: alice, diary_visibility: public}
//	diaries:
//	  - {id: 10, profile_id: 1, visibility: friends-only, created_at: 2024-05-01T10:00:00Z}
//	friends:
//	  - [1, 2]
type Seed struct {
	Profiles []seedProfile `yaml:"profiles"`
	Diaries  []seedDiary   `yaml:"diaries"`
	Friends  [][]int64     `yaml:"friends"`
}

type seedProfile struct {
	ID              int64     `yaml:"id"`
	UserID          string    `yaml:"user_id"`
	Username        string    `yaml:"username"`
	DisplayName     string    `yaml:"display_name"`
	AvatarURL       string    `yaml:"avatar_url"`
	DiaryVisibility string    `yaml:"diary_visibility"`
	CreatedAt       time.Time `yaml:"created_at"`
}

type seedDiary struct {
	ID         int64      `yaml:"id"`
	ProfileID  int64      `yaml:"profile_id"`
	Title      string     `yaml:"title"`
	Content    string     `yaml:"content"`
	Visibility string     `yaml:"visibility"`
	CreatedAt  time.Time  `yaml:"created_at"`
	UpdatedAt  *time.Time `yaml:"updated_at"`
}

// LoadSeed decodes a YAML seed and loads it into a fresh Store. Profiles
// without a diary_visibility default to public.
func LoadSeed(r io.Reader) (*Store, error) {
	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return seed.Store()
}

func LoadSeedFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadSeed(f)
}

func (seed Seed) Store() (*Store, error) {
	s := New()

	for _, p := range seed.Profiles {
		dv := models.DiaryVisibility(p.DiaryVisibility)
		if dv == "" {
			dv = models.DiaryVisibilityPublic
		}
		err := s.AddProfile(models.Profile{
			ID:              p.ID,
			UserID:          p.UserID,
			Username:        p.Username,
			DisplayName:     p.DisplayName,
			AvatarURL:       p.AvatarURL,
			DiaryVisibility: dv,
			CreatedAt:       p.CreatedAt,
		})
		if err != nil {
			return nil, err
		}
	}

	for _, d := range seed.Diaries {
		err := s.AddDiary(models.Diary{
			ID:         d.ID,
			ProfileID:  d.ProfileID,
			Title:      d.Title,
			Content:    d.Content,
			Visibility: models.Visibility(d.Visibility),
			CreatedAt:  d.CreatedAt,
			UpdatedAt:  d.UpdatedAt,
		})
		if err != nil {
			return nil, err
		}
	}

	for i, pair := range seed.Friends {
		if len(pair) != 2 {
			return nil, fmt.Errorf("friends[%d]: want two profile ids, got %d", i, len(pair))
		}
		if err := s.AddFriendship(pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("friends[%d]: %w", i, err)
		}
	}

	return s, nil
}
