package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultEdamamBaseURL = "https://api.edamam.com/api/recipes/v2"

var ErrRecipeNotFound = errors.New("recipe not found")

type (
	EdamamClient interface {
		SearchRecipes(ctx context.Context, params RecipeSearchParams) ([]EdamamRecipe, error)
		FetchRecipeByURI(ctx context.Context, uri string) (*EdamamRecipe, error)
	}

	edamamClient struct {
		baseURL    string
		appID      string
		appKey     string
		httpClient *http.Client
	}

	RecipeSearchParams struct {
		Query       string
		Diet        string
		Health      []string
		CuisineType string
		MealType    string
		Calories    string
	}

	EdamamRecipe struct {
		URI          string             `json:"uri"`
		Label        string             `json:"label"`
		Image        string             `json:"image"`
		URL          string             `json:"url"`
		Yield        float64            `json:"yield"`
		DietLabels   []string           `json:"dietLabels"`
		HealthLabels []string           `json:"healthLabels"`
		CuisineType  []string           `json:"cuisineType"`
		MealType     []string           `json:"mealType"`
		TotalTime    float64            `json:"totalTime"`
		Calories     float64            `json:"calories"`
		Ingredients  []EdamamIngredient `json:"ingredients"`
	}

	EdamamIngredient struct {
		Text     string   `json:"text"`
		Quantity *float64 `json:"quantity"`
		Measure  *string  `json:"measure"`
		Food     string   `json:"food"`
		FoodID   string   `json:"foodId"`
	}

	edamamHit struct {
		Recipe EdamamRecipe `json:"recipe"`
	}

	edamamSearchResponse struct {
		Hits []edamamHit `json:"hits"`
	}

	edamamRecipeResponse struct {
		Recipe *EdamamRecipe `json:"recipe"`
	}
)

func NewEdamamClient(baseURL, appID, appKey string) EdamamClient {
	if baseURL == "" {
		baseURL = DefaultEdamamBaseURL
	}
	return &edamamClient{
		baseURL:    baseURL,
		appID:      appID,
		appKey:     appKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *edamamClient) SearchRecipes(ctx context.Context, params RecipeSearchParams) ([]EdamamRecipe, error) {
	values := url.Values{}
	values.Set("type", "public")
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)
	values.Set("q", params.Query)
	if params.Diet != "" {
		values.Set("diet", params.Diet)
	}
	for _, h := range params.Health {
		values.Add("health", h)
	}
	if params.CuisineType != "" {
		values.Set("cuisineType", params.CuisineType)
	}
	if params.MealType != "" {
		values.Set("mealType", params.MealType)
	}
	if params.Calories != "" {
		values.Set("calories", params.Calories)
	}

	searchURL := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edamam search returned status %d", resp.StatusCode)
	}

	var result edamamSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	recipes := make([]EdamamRecipe, 0, len(result.Hits))
	for _, hit := range result.Hits {
		recipes = append(recipes, hit.Recipe)
	}
	return recipes, nil
}

// FetchRecipeByURI resolves a full Edamam recipe URI, e.g.
// "http://www.edamam.com/ontologies/edamam.owl#recipe_<id>", to its
// recipe payload.
func (c *edamamClient) FetchRecipeByURI(ctx context.Context, uri string) (*EdamamRecipe, error) {
	id, ok := recipeIDFromURI(uri)
	if !ok {
		return nil, ErrRecipeNotFound
	}

	values := url.Values{}
	values.Set("type", "public")
	values.Set("app_id", c.appID)
	values.Set("app_key", c.appKey)

	recipeURL := fmt.Sprintf("%s/%s?%s", c.baseURL, id, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, recipeURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrRecipeNotFound
	}

	var result edamamRecipeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return result.Recipe, nil
}

func recipeIDFromURI(uri string) (string, bool) {
	_, id, found := strings.Cut(uri, "#recipe_")
	if !found || id == "" {
		return "", false
	}
	return id, true
}
