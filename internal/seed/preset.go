package seed

import (
	"context"
	"fmt"
	"os"

	"lanagram/internal/models"
	"lanagram/internal/repository"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Preset is a declarative seed file: named accounts and their posts,
// loaded from YAML. Presets create only what is missing, keyed by name,
// so they can be re-applied.
type Preset struct {
	Users []PresetUser `yaml:"users"`
	Posts []PresetPost `yaml:"posts"`
}

// PresetUser declares one account.
type PresetUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Bio      string `yaml:"bio"`
	Avatar   string `yaml:"avatar"`
	Verified bool   `yaml:"verified"`
}

// PresetPost declares one post, attributed to a user by name.
type PresetPost struct {
	Author    string `yaml:"author"`
	Caption   string `yaml:"caption"`
	Image     string `yaml:"image"`
	Timestamp int64  `yaml:"timestamp"`
}

// LoadPreset parses a preset YAML file.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse preset: %w", err)
	}
	return &p, nil
}

// Apply creates the preset's users and posts. Users that already exist
// by name are reused, not duplicated.
func (p *Preset) Apply(ctx context.Context, users repository.UserRepository, posts repository.PostRepository) error {
	byName := make(map[string]*models.User, len(p.Users))

	for _, pu := range p.Users {
		existing, err := users.GetByName(ctx, pu.Name)
		if err != nil {
			return err
		}
		if existing != nil {
			byName[pu.Name] = existing
			continue
		}
		password := pu.Password
		if password == "" {
			password = "password123"
		}
		user := &models.User{
			ID:         uuid.NewString(),
			Name:       pu.Name,
			Email:      pu.Email,
			Password:   password,
			Bio:        pu.Bio,
			ProfilePic: pu.Avatar,
			IsVerified: pu.Verified,
			Followers:  []string{},
			Following:  []string{},
		}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		byName[pu.Name] = user
	}

	for _, pp := range p.Posts {
		author, ok := byName[pp.Author]
		if !ok {
			existing, err := users.GetByName(ctx, pp.Author)
			if err != nil {
				return err
			}
			if existing == nil {
				return fmt.Errorf("preset post references unknown author %q", pp.Author)
			}
			author = existing
		}
		post := &models.Post{
			ID:        uuid.NewString(),
			UserID:    author.ID,
			Caption:   pp.Caption,
			ImageURL:  pp.Image,
			Timestamp: pp.Timestamp,
			Likes:     []string{},
			Comments:  []models.Comment{},
		}
		if err := posts.Create(ctx, post); err != nil {
			return err
		}
	}
	return nil
}
