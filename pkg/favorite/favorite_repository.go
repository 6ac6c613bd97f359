package favorite

import (
	"context"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FavoriteRepository interface {
		GetFavorites(ctx context.Context, userID uuid.UUID) ([]*entities.FavoriteRecipe, error)
		AddFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error
		RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error
	}

	favoriteRepository struct {
		db *gorm.DB
	}
)

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) GetFavorites(ctx context.Context, userID uuid.UUID) ([]*entities.FavoriteRecipe, error) {
	var favorites []*entities.FavoriteRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// AddFavorite relies on the (user_id, recipe_id) unique index, not a
// pre-check, so two concurrent adds cannot both land a row.
func (r *favoriteRepository) AddFavorite(ctx context.Context, favorite *entities.FavoriteRecipe) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.FavoriteRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrFavoriteNotFound
	}
	return nil
}
