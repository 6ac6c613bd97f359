package done

import (
	"context"
	"errors"
	"time"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/entities"
	"smart-recipes-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DoneService interface {
		GetDoneRecipes(ctx context.Context, email string) ([]domain.DoneRecipeResponse, error)
		AddDoneRecipe(ctx context.Context, req domain.AddDoneRecipeRequest) (domain.DoneRecipeResponse, error)
	}

	doneService struct {
		doneRepository DoneRepository
		userRepository user.UserRepository
	}
)

func NewDoneService(doneRepository DoneRepository, userRepository user.UserRepository) DoneService {
	return &doneService{
		doneRepository: doneRepository,
		userRepository: userRepository,
	}
}

func (s *doneService) GetDoneRecipes(ctx context.Context, email string) ([]domain.DoneRecipeResponse, error) {
	u, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	doneRecipes, err := s.doneRepository.GetDoneRecipes(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DoneRecipeResponse, 0, len(doneRecipes))
	for _, d := range doneRecipes {
		result = append(result, toDoneResponse(d))
	}
	return result, nil
}

// AddDoneRecipe inserts a new row on every call. Cooking the same recipe
// twice is two completions, so there is no uniqueness constraint here.
func (s *doneService) AddDoneRecipe(ctx context.Context, req domain.AddDoneRecipeRequest) (domain.DoneRecipeResponse, error) {
	u, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DoneRecipeResponse{}, domain.ErrUserNotFound
		}
		return domain.DoneRecipeResponse{}, err
	}

	doneRecipe := &entities.DoneRecipe{
		ID:          uuid.New(),
		UserID:      u.ID,
		RecipeID:    req.RecipeData.RecipeID,
		Type:        req.RecipeData.Type,
		Nationality: req.RecipeData.Nationality,
		Category:    req.RecipeData.Category,
		Name:        req.RecipeData.Name,
		Image:       req.RecipeData.Image,
		DoneDate:    time.Now(),
		Tags:        entities.JoinTags(req.RecipeData.Tags),
	}

	if err := s.doneRepository.AddDoneRecipe(ctx, doneRecipe); err != nil {
		return domain.DoneRecipeResponse{}, err
	}

	return toDoneResponse(doneRecipe), nil
}

func toDoneResponse(d *entities.DoneRecipe) domain.DoneRecipeResponse {
	return domain.DoneRecipeResponse{
		ID:          d.ID.String(),
		RecipeID:    d.RecipeID,
		Type:        d.Type,
		Nationality: d.Nationality,
		Category:    d.Category,
		Name:        d.Name,
		Image:       d.Image,
		DoneDate:    d.DoneDate,
		Tags:        entities.SplitTags(d.Tags),
	}
}
