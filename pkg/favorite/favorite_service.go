package favorite

import (
	"context"
	"errors"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/entities"
	"smart-recipes-backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FavoriteService interface {
		GetFavorites(ctx context.Context, email string) ([]domain.FavoriteRecipeResponse, error)
		AddFavorite(ctx context.Context, req domain.AddFavoriteRequest) (domain.FavoriteRecipeResponse, error)
		RemoveFavorite(ctx context.Context, email string, recipeID string) error
	}

	favoriteService struct {
		favoriteRepository FavoriteRepository
		userRepository     user.UserRepository
	}
)

func NewFavoriteService(favoriteRepository FavoriteRepository, userRepository user.UserRepository) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		userRepository:     userRepository,
	}
}

func (s *favoriteService) resolveUser(ctx context.Context, email string) (*entities.User, error) {
	u, err := s.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *favoriteService) GetFavorites(ctx context.Context, email string) ([]domain.FavoriteRecipeResponse, error) {
	u, err := s.resolveUser(ctx, email)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepository.GetFavorites(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.FavoriteRecipeResponse, 0, len(favorites))
	for _, f := range favorites {
		result = append(result, toFavoriteResponse(f))
	}
	return result, nil
}

func (s *favoriteService) AddFavorite(ctx context.Context, req domain.AddFavoriteRequest) (domain.FavoriteRecipeResponse, error) {
	u, err := s.resolveUser(ctx, req.Email)
	if err != nil {
		return domain.FavoriteRecipeResponse{}, err
	}

	favorite := &entities.FavoriteRecipe{
		ID:          uuid.New(),
		UserID:      u.ID,
		RecipeID:    req.RecipeData.RecipeID,
		Type:        req.RecipeData.Type,
		Nationality: req.RecipeData.Nationality,
		Category:    req.RecipeData.Category,
		Name:        req.RecipeData.Name,
		Image:       req.RecipeData.Image,
	}

	if err := s.favoriteRepository.AddFavorite(ctx, favorite); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.FavoriteRecipeResponse{}, domain.ErrFavoriteAlreadyExists
		}
		return domain.FavoriteRecipeResponse{}, err
	}

	return toFavoriteResponse(favorite), nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, email string, recipeID string) error {
	u, err := s.resolveUser(ctx, email)
	if err != nil {
		return err
	}
	return s.favoriteRepository.RemoveFavorite(ctx, u.ID, recipeID)
}

func toFavoriteResponse(f *entities.FavoriteRecipe) domain.FavoriteRecipeResponse {
	return domain.FavoriteRecipeResponse{
		ID:          f.ID.String(),
		RecipeID:    f.RecipeID,
		Type:        f.Type,
		Nationality: f.Nationality,
		Category:    f.Category,
		Name:        f.Name,
		Image:       f.Image,
	}
}
