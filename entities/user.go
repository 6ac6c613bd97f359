package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email    string    `gorm:"uniqueIndex;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"default:'user'" json:"role"`

	Favorites   []*FavoriteRecipe `gorm:"foreignKey:UserID" json:"-"`
	DoneRecipes []*DoneRecipe     `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}
