package models

// Platform names used in brand records.
const (
	PlatformReddit       = "Reddit"
	PlatformGoogleSearch = "Google Search"
	PlatformYouTube      = "YouTube"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Service string `json:"service,omitempty"`
	Brands  int    `json:"brands"`
}

// PlatformMentions is a platform name with its mention count
type PlatformMentions struct {
	Name     string `json:"name"`
	Mentions int    `json:"mentions"`
}

// PlatformDistribution holds mention counts per tracked platform.
// The counts are not reconciled with BrandRecord.TotalMentions.
type PlatformDistribution struct {
	Reddit       int `json:"reddit"`
	GoogleSearch int `json:"googleSearch"`
	YouTube      int `json:"youtube"`
}

// CompetitorShare is one competitor entry of a share of voice breakdown
type CompetitorShare struct {
	Name     string `json:"name"`
	Score    int    `json:"score"`
	Mentions int    `json:"mentions"`
}

// ShareOfVoice represents a brand's share of mentions within its category
type ShareOfVoice struct {
	Score       int               `json:"score"`
	Mentions    int               `json:"mentions"`
	Growth      int               `json:"growth"`
	Competitors []CompetitorShare `json:"competitors"`
}

// MarketIndexScore is the composite visibility/engagement/breadth score
type MarketIndexScore struct {
	Score           int     `json:"score"`
	CategoryAverage int     `json:"categoryAverage"`
	Trend           string  `json:"trend"`
	Visibility      float64 `json:"visibility"`
	Engagement      float64 `json:"engagement"`
	Breadth         float64 `json:"breadth"`
}

// NormalizedScores are 0-100 visibility scores for a brand and three competitors
type NormalizedScores struct {
	Brand       int `json:"brand"`
	Competitor1 int `json:"competitor1"`
	Competitor2 int `json:"competitor2"`
	Competitor3 int `json:"competitor3"`
}

// PlatformScore is a platform name with a score
type PlatformScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// CompetitorLeadPlatform is the platform where a competitor leads the brand
type CompetitorLeadPlatform struct {
	Name       string `json:"name"`
	Competitor string `json:"competitor"`
	Score      int    `json:"score"`
}

// PlatformVisibility represents per-platform visibility against competitors
type PlatformVisibility struct {
	NormalizedScores       NormalizedScores       `json:"normalizedScores"`
	StrongestPlatform      PlatformScore          `json:"strongestPlatform"`
	CompetitorLeadPlatform CompetitorLeadPlatform `json:"competitorLeadPlatform"`
}

// BrandRecord is a synthetic brand visibility record from the dataset
type BrandRecord struct {
	Name                 string               `json:"name"`
	Category             string               `json:"category"`
	TotalMentions        int                  `json:"totalMentions"`
	MentionGrowth        int                  `json:"mentionGrowth"`
	TopPlatform          PlatformMentions     `json:"topPlatform"`
	PlatformDistribution PlatformDistribution `json:"platformDistribution"`
	ShareOfVoice         ShareOfVoice         `json:"shareOfVoice"`
	MarketIndexScore     MarketIndexScore     `json:"marketIndexScore"`
	PlatformVisibility   PlatformVisibility   `json:"platformVisibility"`
}

// BrandTable maps normalized brand keys to records
type BrandTable map[string]BrandRecord

// Dataset is the on-disk layout of the brand dataset file
type Dataset struct {
	Brands BrandTable `json:"brands"`
}

// ErrorResponse is returned on lookup failures
type ErrorResponse struct {
	Error     string   `json:"error"`
	Available []string `json:"available,omitempty"`
}

// SuggestionRequest is the body of a suggestions request
type SuggestionRequest struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
}

// Suggestion is a single marketing suggestion
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SuggestionsResponse is the response of the suggestions endpoint
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// BrandSummary is a compact brand entry used in the dashboard overview
type BrandSummary struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	TotalMentions int    `json:"totalMentions"`
}

// DashboardOverview aggregates the whole dataset for the dashboard landing view
type DashboardOverview struct {
	TotalBrands          int            `json:"totalBrands"`
	TotalMentions        int64          `json:"totalMentions"`
	TotalPlatforms       int            `json:"totalPlatforms"`
	TopBrands            []BrandSummary `json:"topBrands"`
	PlatformDistribution PlatformTotals `json:"platformDistribution"`
	Categories           map[string]int `json:"categories"`
}

// PlatformTotals sums mentions per platform across all brands
type PlatformTotals struct {
	Reddit       int64 `json:"reddit"`
	GoogleSearch int64 `json:"googleSearch"`
	YouTube      int64 `json:"youtube"`
}
