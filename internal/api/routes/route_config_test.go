package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-recipes-backend/entities"
	"smart-recipes-backend/internal/api/handlers"
	"smart-recipes-backend/internal/middleware"
	"smart-recipes-backend/internal/utils"
	"smart-recipes-backend/pkg/done"
	"smart-recipes-backend/pkg/favorite"
	"smart-recipes-backend/pkg/jwt"
	"smart-recipes-backend/pkg/meal"
	"smart-recipes-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.User{}, &entities.FavoriteRecipe{}, &entities.DoneRecipe{}))

	utils.InitValidator()
	app := fiber.New()

	userRepository := user.NewUserRepository(db)
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	favoriteService := favorite.NewFavoriteService(favorite.NewFavoriteRepository(db), userRepository)
	doneService := done.NewDoneService(done.NewDoneRepository(db), userRepository)
	mealService := meal.NewMealService()

	routesConfig := Config{
		App:             app,
		UserHandler:     handlers.NewUserHandler(userService, utils.Validate),
		FavoriteHandler: handlers.NewFavoriteHandler(favoriteService, utils.Validate),
		DoneHandler:     handlers.NewDoneHandler(doneService, utils.Validate),
		MealHandler:     handlers.NewMealHandler(mealService),
		Middleware:      middleware.NewMiddleware(),
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	return resp, env
}

func registerAndLogin(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp, _ := doJSON(t, app, fiber.MethodPost, "/login/register", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodPost, "/login", "", fiber.Map{
		"email": email, "password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &auth))
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/login/register", "", fiber.Map{
		"email": "chef@x.com", "password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/login/register", "", fiber.Map{
		"email": "", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterConflict(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/login/register", "", fiber.Map{
		"email": "chef@x.com", "password": "secret1",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/login/register", "", fiber.Map{
		"email": "chef@x.com", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	app := newTestApp(t)
	registerAndLogin(t, app, "chef@x.com", "secret1")

	resp, _ := doJSON(t, app, fiber.MethodPost, "/login", "", fiber.Map{
		"email": "chef@x.com", "password": "wrong-pass",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/login", "", fiber.Map{
		"email": "nobody@x.com", "password": "secret1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestFavoritesRequireToken(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/favorites/chef@x.com", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/favorites/chef@x.com", "garbage", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestFavoriteLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "chef@x.com", "secret1")

	recipeData := fiber.Map{
		"recipeId":    "52772",
		"type":        "meal",
		"nationality": "Japanese",
		"category":    "Chicken",
		"name":        "Teriyaki Chicken Casserole",
		"image":       "https://example.com/teriyaki.jpg",
	}

	resp, _ := doJSON(t, app, fiber.MethodPost, "/favorites/", token, fiber.Map{
		"email": "chef@x.com", "recipeData": recipeData,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// duplicate add conflicts and leaves a single row
	resp, _ = doJSON(t, app, fiber.MethodPost, "/favorites/", token, fiber.Map{
		"email": "chef@x.com", "recipeData": recipeData,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodGet, "/favorites/chef@x.com", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var favorites []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "52772", favorites[0]["recipe_id"])

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/favorites/chef@x.com/52772", token, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, env = doJSON(t, app, fiber.MethodGet, "/favorites/chef@x.com", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	favorites = nil
	require.NoError(t, json.Unmarshal(env.Data, &favorites))
	assert.Empty(t, favorites)

	resp, _ = doJSON(t, app, fiber.MethodDelete, "/favorites/chef@x.com/52772", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFavoritesUnknownUser(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "chef@x.com", "secret1")

	resp, _ := doJSON(t, app, fiber.MethodGet, "/favorites/nobody@x.com", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDoneRecipeLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := registerAndLogin(t, app, "chef@x.com", "secret1")

	payload := fiber.Map{
		"email": "chef@x.com",
		"recipeData": fiber.Map{
			"recipeId":    "52772",
			"type":        "meal",
			"nationality": "Japanese",
			"category":    "Chicken",
			"name":        "Teriyaki Chicken Casserole",
			"image":       "https://example.com/teriyaki.jpg",
			"tags":        []string{"veg", "spicy"},
		},
	}

	resp, _ := doJSON(t, app, fiber.MethodPost, "/done-recipes/", token, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// completing the same recipe again is a second event, not a conflict
	resp, _ = doJSON(t, app, fiber.MethodPost, "/done-recipes/", token, payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, app, fiber.MethodGet, "/done-recipes/chef@x.com", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var doneRecipes []struct {
		RecipeID string   `json:"recipe_id"`
		Tags     []string `json:"tags"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &doneRecipes))
	require.Len(t, doneRecipes, 2)
	assert.Equal(t, []string{"veg", "spicy"}, doneRecipes[0].Tags)
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
