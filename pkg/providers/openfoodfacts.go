package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const DefaultOpenFoodFactsBaseURL = "https://world.openfoodfacts.org/api/v2"

var ErrProductNotFound = errors.New("product not found")

type (
	OpenFoodFactsClient interface {
		FetchProduct(ctx context.Context, barcode string) (*Product, error)
	}

	openFoodFactsClient struct {
		baseURL    string
		httpClient *http.Client
	}

	Product struct {
		ProductName    string     `json:"product_name"`
		Brands         string     `json:"brands"`
		Nutriments     Nutriments `json:"nutriments"`
		LabelsTags     []string   `json:"labels_tags"`
		CategoriesTags []string   `json:"categories_tags"`
		ImageURL       string     `json:"image_url"`
	}

	Nutriments struct {
		EnergyKcal100g *float64 `json:"energy-kcal_100g"`
		Proteins100g   *float64 `json:"proteins_100g"`
		Carbs100g      *float64 `json:"carbohydrates_100g"`
		Fat100g        *float64 `json:"fat_100g"`
		Fiber100g      *float64 `json:"fiber_100g"`
		Sugars100g     *float64 `json:"sugars_100g"`
		Sodium100g     *float64 `json:"sodium_100g"`
	}

	productEnvelope struct {
		Status  int      `json:"status"`
		Product *Product `json:"product"`
	}
)

func NewOpenFoodFactsClient(baseURL string) OpenFoodFactsClient {
	if baseURL == "" {
		baseURL = DefaultOpenFoodFactsBaseURL
	}
	return &openFoodFactsClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchProduct looks up a barcode in the Open Food Facts database.
// Misses and upstream failures both surface as ErrProductNotFound so a
// flaky upstream never breaks the scan flow.
func (c *openFoodFactsClient) FetchProduct(ctx context.Context, barcode string) (*Product, error) {
	url := fmt.Sprintf("%s/product/%s.json", c.baseURL, barcode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrProductNotFound
	}

	var envelope productEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, err
	}
	if envelope.Status != 1 || envelope.Product == nil {
		return nil, ErrProductNotFound
	}
	return envelope.Product, nil
}

// HasLabel reports whether the product carries the given label tag,
// e.g. "en:vegan".
func (p *Product) HasLabel(tag string) bool {
	for _, label := range p.LabelsTags {
		if label == tag {
			return true
		}
	}
	return false
}
