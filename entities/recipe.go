package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type FavoriteRecipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID    string    `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`
	Type        string    `json:"type"`
	Nationality string    `json:"nationality"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

type DoneRecipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	RecipeID    string    `gorm:"not null" json:"recipe_id"`
	Type        string    `json:"type"`
	Nationality string    `json:"nationality"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	DoneDate    time.Time `gorm:"type:timestamp;not null" json:"done_date"`
	Tags        string    `gorm:"type:text" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

// Tags live in a single comma-joined text column since the store has no native
// list type. JoinTags and SplitTags are the only conversion points.

func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func SplitTags(tags string) []string {
	if tags == "" {
		return []string{}
	}
	return strings.Split(tags, ",")
}
