package done

import (
	"context"

	"smart-recipes-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DoneRepository interface {
		GetDoneRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.DoneRecipe, error)
		AddDoneRecipe(ctx context.Context, doneRecipe *entities.DoneRecipe) error
	}

	doneRepository struct {
		db *gorm.DB
	}
)

func NewDoneRepository(db *gorm.DB) DoneRepository {
	return &doneRepository{db: db}
}

func (r *doneRepository) GetDoneRecipes(ctx context.Context, userID uuid.UUID) ([]*entities.DoneRecipe, error) {
	var doneRecipes []*entities.DoneRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("done_date desc").
		Find(&doneRecipes).Error; err != nil {
		return nil, err
	}
	return doneRecipes, nil
}

func (r *doneRepository) AddDoneRecipe(ctx context.Context, doneRecipe *entities.DoneRecipe) error {
	return r.db.WithContext(ctx).Create(doneRecipe).Error
}
