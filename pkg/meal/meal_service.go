package meal

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"smart-recipes-backend/domain"
	"smart-recipes-backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

// DefaultBaseURL is TheMealDB free-tier API root.
const DefaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

type (
	MealService interface {
		SearchMeals(ctx context.Context, term string) ([]json.RawMessage, error)
		ListCategories(ctx context.Context) ([]json.RawMessage, error)
		FilterByCategory(ctx context.Context, category string) ([]json.RawMessage, error)
		GetMealByID(ctx context.Context, id string) (json.RawMessage, error)
	}

	mealService struct {
		httpClient *http.Client
	}
)

func NewMealService() MealService {
	return &mealService{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func baseURL() string {
	if override := utils.GetConfig("MEALDB_BASE_URL"); override != "" {
		return override
	}
	return DefaultBaseURL
}

// fetchMeals calls one upstream endpoint and unwraps the meals envelope.
// The upstream answers "no results" with {"meals": null}, which comes back
// as an empty slice. Every transport or decode failure collapses into
// ErrUpstreamUnavailable; callers never see upstream detail.
func (s *mealService) fetchMeals(ctx context.Context, path string, query url.Values) ([]json.RawMessage, error) {
	endpoint := baseURL() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.ErrUpstreamUnavailable
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Errorf("meal provider request failed: %v", err)
		return nil, domain.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("meal provider returned %s for %s", resp.Status, path)
		return nil, domain.ErrUpstreamUnavailable
	}

	var envelope domain.MealEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Errorf("meal provider sent malformed body: %v", err)
		return nil, domain.ErrUpstreamUnavailable
	}

	if envelope.Meals == nil {
		return []json.RawMessage{}, nil
	}
	return envelope.Meals, nil
}

func (s *mealService) SearchMeals(ctx context.Context, term string) ([]json.RawMessage, error) {
	return s.fetchMeals(ctx, "/search.php", url.Values{"s": {term}})
}

func (s *mealService) ListCategories(ctx context.Context) ([]json.RawMessage, error) {
	return s.fetchMeals(ctx, "/list.php", url.Values{"c": {"list"}})
}

func (s *mealService) FilterByCategory(ctx context.Context, category string) ([]json.RawMessage, error) {
	return s.fetchMeals(ctx, "/filter.php", url.Values{"c": {category}})
}

func (s *mealService) GetMealByID(ctx context.Context, id string) (json.RawMessage, error) {
	meals, err := s.fetchMeals(ctx, "/lookup.php", url.Values{"i": {id}})
	if err != nil {
		return nil, err
	}
	if len(meals) == 0 {
		return nil, nil
	}
	return meals[0], nil
}
