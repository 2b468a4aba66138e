package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"marketecho/models"
	"marketecho/services"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord(name, category string, total int) models.BrandRecord {
	return models.BrandRecord{
		Name:          name,
		Category:      category,
		TotalMentions: total,
		TopPlatform:   models.PlatformMentions{Name: models.PlatformYouTube, Mentions: total / 2},
		PlatformDistribution: models.PlatformDistribution{
			Reddit:       total / 4,
			GoogleSearch: total / 4,
			YouTube:      total / 2,
		},
		ShareOfVoice: models.ShareOfVoice{
			Score: 25,
			Competitors: []models.CompetitorShare{
				{Name: "Uniqlo", Score: 37, Mentions: 100},
				{Name: "Gap", Score: 22, Mentions: 60},
				{Name: "H&M", Score: 15, Mentions: 40},
			},
		},
		MarketIndexScore: models.MarketIndexScore{Score: 66, CategoryAverage: 60, Trend: "+6", Visibility: 0.5, Engagement: 0.6, Breadth: 0.7},
	}
}

func newTestDataset(t *testing.T) *services.DatasetService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brands.json")
	require.NoError(t, services.WriteDataset(path, models.BrandTable{
		"zara":     testRecord("Zara", "fashion", 42000),
		"hm":       testRecord("H&M", "fashion", 31000),
		"apple":    testRecord("Apple", "tech", 80000),
		"bewakoof": testRecord("Bewakoof", "fashion", 5000),
	}))
	return services.NewDatasetService(path)
}

func performRequest(handler gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler(c)
	return w
}

func TestGetBrand_Found(t *testing.T) {
	handler := NewBrandHandler(newTestDataset(t), 10)

	w := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, "/api/brands?name=zara", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var record models.BrandRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.Equal(t, "Zara", record.Name)
	assert.Equal(t, "fashion", record.Category)
	assert.Equal(t, testRecord("Zara", "fashion", 42000), record)
}

func TestGetBrand_NormalizesQuery(t *testing.T) {
	handler := NewBrandHandler(newTestDataset(t), 10)

	for _, q := range []string{"Zara", "%20ZARA%20", "H%26M", "h-m", "%20h%20%26%20m%20"} {
		w := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, "/api/brands?name="+q, nil))
		assert.Equal(t, http.StatusOK, w.Code, q)
	}
}

func TestGetBrand_MissingName(t *testing.T) {
	handler := NewBrandHandler(newTestDataset(t), 10)

	for _, target := range []string{"/api/brands", "/api/brands?name="} {
		w := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Brand name is required"}`, w.Body.String())
	}
}

func TestGetBrand_NotFound(t *testing.T) {
	handler := NewBrandHandler(newTestDataset(t), 2)

	w := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, "/api/brands?name=NonexistentBrandXYZ", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Brand not found","available":["apple","bewakoof"]}`, w.Body.String())
}

func TestGetBrand_NotFoundWithoutSample(t *testing.T) {
	handler := NewBrandHandler(newTestDataset(t), 0)

	w := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, "/api/brands?name=%21%21%21", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Brand not found"}`, w.Body.String())
}

func TestGetBrand_MissingDataset(t *testing.T) {
	dataset := services.NewDatasetService(filepath.Join(t.TempDir(), "missing.json"))
	handler := NewBrandHandler(dataset, 10)

	w := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, "/api/brands?name=zara", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Brand not found"}`, w.Body.String())
}

func TestGetBrand_Idempotent(t *testing.T) {
	handler := NewBrandHandler(newTestDataset(t), 10)

	first := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, "/api/brands?name=apple", nil))
	second := performRequest(handler.GetBrand, httptest.NewRequest(http.MethodGet, "/api/brands?name=apple", nil))

	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

type stubGenerator struct {
	text string
	err  error
}

func (s stubGenerator) Enabled() bool { return true }

func (s stubGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return s.text, s.err
}

func postSuggestions(t *testing.T, svc *services.SuggestionService, body string) models.SuggestionsResponse {
	t.Helper()
	handler := NewSuggestionHandler(svc)
	req := httptest.NewRequest(http.MethodPost, "/api/suggestions", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := performRequest(handler.CreateSuggestions, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.SuggestionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateSuggestions_Fallback(t *testing.T) {
	resp := postSuggestions(t, services.NewSuggestionService(nil, 0), `{"brand":"Zara","category":"fashion"}`)

	require.Len(t, resp.Suggestions, 3)
	for _, s := range resp.Suggestions {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
	}
	assert.Contains(t, resp.Suggestions[0].Description, "Zara")
}

func TestCreateSuggestions_Generated(t *testing.T) {
	svc := services.NewSuggestionService(stubGenerator{text: `[{"title":"Go live","description":"Stream launches."}]`}, 0)

	resp := postSuggestions(t, svc, `{"brand":"Zara","category":"fashion"}`)

	assert.Equal(t, []models.Suggestion{{Title: "Go live", Description: "Stream launches."}}, resp.Suggestions)
}

func TestCreateSuggestions_UpstreamFailureIsStill200(t *testing.T) {
	svc := services.NewSuggestionService(stubGenerator{err: errors.New("boom")}, 0)

	resp := postSuggestions(t, svc, `{"brand":"Zara","category":"fashion"}`)

	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "Service Unavailable", resp.Suggestions[0].Title)
}

func TestCreateSuggestions_ParseFailureIsStill200(t *testing.T) {
	svc := services.NewSuggestionService(stubGenerator{text: "not json"}, 0)

	resp := postSuggestions(t, svc, `{"brand":"Zara","category":"fashion"}`)

	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "AI Generation Error", resp.Suggestions[0].Title)
}

func TestCreateSuggestions_InvalidBody(t *testing.T) {
	resp := postSuggestions(t, services.NewSuggestionService(nil, 0), `invalid json`)

	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "Service Unavailable", resp.Suggestions[0].Title)
}

func TestHealthHandler(t *testing.T) {
	handler := NewServiceHandler(newTestDataset(t))

	w := performRequest(handler.HealthHandler, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, ServiceName, resp.Service)
	assert.Equal(t, 4, resp.Brands)
}

func TestHealthHandler_Degraded(t *testing.T) {
	handler := NewServiceHandler(services.NewDatasetService(filepath.Join(t.TempDir(), "missing.json")))

	w := performRequest(handler.HealthHandler, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, 0, resp.Brands)
}

func TestRootAndVersionHandlers(t *testing.T) {
	handler := NewServiceHandler(newTestDataset(t))

	w := performRequest(handler.RootHandler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"MarketEcho API"`)

	w = performRequest(handler.VersionHandler, httptest.NewRequest(http.MethodGet, "/version", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"service":"marketecho-api"`)
	assert.Contains(t, w.Body.String(), `"go_version"`)
}

func TestOverviewHandler(t *testing.T) {
	handler := NewDashboardHandler(services.NewOverviewService(newTestDataset(t)))

	w := performRequest(handler.OverviewHandler, httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var overview models.DashboardOverview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 4, overview.TotalBrands)
	assert.Equal(t, int64(42000+31000+80000+5000), overview.TotalMentions)
	require.NotEmpty(t, overview.TopBrands)
	assert.Equal(t, "apple", overview.TopBrands[0].Key)
	assert.Equal(t, 3, overview.Categories["fashion"])
}
