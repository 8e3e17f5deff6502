package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultUSDABaseURL = "https://api.nal.usda.gov/fdc/v1"

type (
	USDAClient interface {
		SearchFoods(ctx context.Context, query string, pageSize int) ([]USDAFood, error)
	}

	usdaClient struct {
		baseURL    string
		apiKey     string
		httpClient *http.Client
	}

	USDAFood struct {
		FdcID         int            `json:"fdcId"`
		Description   string         `json:"description"`
		FoodCategory  string         `json:"foodCategory"`
		FoodNutrients []USDANutrient `json:"foodNutrients"`
	}

	USDANutrient struct {
		NutrientName string  `json:"nutrientName"`
		Value        float64 `json:"value"`
		UnitName     string  `json:"unitName"`
	}

	usdaSearchResponse struct {
		Foods []USDAFood `json:"foods"`
	}
)

func NewUSDAClient(baseURL, apiKey string) USDAClient {
	if baseURL == "" {
		baseURL = DefaultUSDABaseURL
	}
	return &usdaClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *usdaClient) SearchFoods(ctx context.Context, query string, pageSize int) ([]USDAFood, error) {
	if pageSize <= 0 {
		pageSize = 25
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", query)
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("pageNumber", "1")

	searchURL := fmt.Sprintf("%s/foods/search?%s", c.baseURL, params.Encode())
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
		return nil, fmt.Errorf("usda search returned status %d", resp.StatusCode)
	}

	var result usdaSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return result.Foods, nil
}

// Nutrient returns the value of the named nutrient, or nil when the
// food does not report it.
func (f *USDAFood) Nutrient(name string) *float64 {
	for _, n := range f.FoodNutrients {
		if n.NutrientName == name {
			v := n.Value
			return &v
		}
	}
	return nil
}
