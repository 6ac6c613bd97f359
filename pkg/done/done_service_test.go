package done

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/entities"
	"smart-recipes-backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.DoneRecipe{}))
	return db
}

func newTestService(t *testing.T) (DoneService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	service := NewDoneService(NewDoneRepository(db), user.NewUserRepository(db))
	return service, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) {
	t.Helper()
	require.NoError(t, db.Create(&entities.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "irrelevant",
		Role:     domain.RoleUser,
	}).Error)
}

func doneRequest(email, recipeID string, tags domain.TagList) domain.AddDoneRecipeRequest {
	return domain.AddDoneRecipeRequest{
		Email: email,
		RecipeData: domain.DoneRecipeData{
			RecipeSnapshot: domain.RecipeSnapshot{
				RecipeID:    recipeID,
				Type:        "meal",
				Nationality: "Italian",
				Category:    "Pasta",
				Name:        "Spicy Arrabiata Penne",
				Image:       "https://example.com/penne.jpg",
			},
			Tags: tags,
		},
	}
}

func TestAddDoneRecipe(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	seedUser(t, db, "chef@x.com")

	res, err := service.AddDoneRecipe(ctx, doneRequest("chef@x.com", "52772", domain.TagList{"veg", "spicy"}))
	require.NoError(t, err)
	assert.Equal(t, "52772", res.RecipeID)
	assert.WithinDuration(t, time.Now(), res.DoneDate, 5*time.Second)
}

func TestDuplicateDoneRecipesAllowed(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	seedUser(t, db, "chef@x.com")

	_, err := service.AddDoneRecipe(ctx, doneRequest("chef@x.com", "52772", nil))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = service.AddDoneRecipe(ctx, doneRequest("chef@x.com", "52772", nil))
	require.NoError(t, err)

	doneRecipes, err := service.GetDoneRecipes(ctx, "chef@x.com")
	require.NoError(t, err)
	require.Len(t, doneRecipes, 2)
	// most recent completion first
	assert.True(t, !doneRecipes[0].DoneDate.Before(doneRecipes[1].DoneDate))
}

func TestTagsRoundTrip(t *testing.T) {
	service, db := newTestService(t)
	ctx := context.Background()
	seedUser(t, db, "chef@x.com")

	_, err := service.AddDoneRecipe(ctx, doneRequest("chef@x.com", "52772", domain.TagList{"veg", "spicy"}))
	require.NoError(t, err)

	doneRecipes, err := service.GetDoneRecipes(ctx, "chef@x.com")
	require.NoError(t, err)
	require.Len(t, doneRecipes, 1)
	assert.Equal(t, []string{"veg", "spicy"}, doneRecipes[0].Tags)
}

func TestTagsAcceptSingleString(t *testing.T) {
	var req domain.AddDoneRecipeRequest
	payload := []byte(`{"email":"chef@x.com","recipeData":{"recipeId":"52772","tags":"veg,spicy"}}`)
	require.NoError(t, json.Unmarshal(payload, &req))
	assert.Equal(t, domain.TagList{"veg,spicy"}, req.RecipeData.Tags)

	service, db := newTestService(t)
	seedUser(t, db, "chef@x.com")

	_, err := service.AddDoneRecipe(context.Background(), req)
	require.NoError(t, err)

	doneRecipes, err := service.GetDoneRecipes(context.Background(), "chef@x.com")
	require.NoError(t, err)
	require.Len(t, doneRecipes, 1)
	// the pre-joined string is stored as-is and splits on read
	assert.Equal(t, []string{"veg", "spicy"}, doneRecipes[0].Tags)
}

func TestUnknownUser(t *testing.T) {
	service, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.GetDoneRecipes(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = service.AddDoneRecipe(ctx, doneRequest("nobody@x.com", "52772", nil))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
