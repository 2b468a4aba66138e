package services

import (
	"sort"
	"sync"

	"marketecho/models"
)

const (
	trackedPlatforms = 3
	topBrandsLimit   = 5
)

// OverviewService computes dashboard-wide aggregates from the brand dataset.
// The dataset never changes at runtime so the overview is computed once.
type OverviewService struct {
	dataset *DatasetService

	once     sync.Once
	overview models.DashboardOverview
}

func NewOverviewService(dataset *DatasetService) *OverviewService {
	return &OverviewService{dataset: dataset}
}

// Overview returns the dashboard overview
func (s *OverviewService) Overview() models.DashboardOverview {
	s.once.Do(func() {
		s.overview = BuildOverview(s.dataset.Brands())
	})
	return s.overview
}

// BuildOverview aggregates a brand table. Top brands are ordered by total
// mentions, ties broken by key.
func BuildOverview(brands models.BrandTable) models.DashboardOverview {
	overview := models.DashboardOverview{
		TotalBrands:    len(brands),
		TotalPlatforms: trackedPlatforms,
		TopBrands:      []models.BrandSummary{},
		Categories:     map[string]int{},
	}

	summaries := make([]models.BrandSummary, 0, len(brands))
	for key, record := range brands {
		overview.TotalMentions += int64(record.TotalMentions)
		overview.PlatformDistribution.Reddit += int64(record.PlatformDistribution.Reddit)
		overview.PlatformDistribution.GoogleSearch += int64(record.PlatformDistribution.GoogleSearch)
		overview.PlatformDistribution.YouTube += int64(record.PlatformDistribution.YouTube)
		overview.Categories[record.Category]++

		summaries = append(summaries, models.BrandSummary{
			Key:           key,
			Name:          record.Name,
			Category:      record.Category,
			TotalMentions: record.TotalMentions,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].TotalMentions != summaries[j].TotalMentions {
			return summaries[i].TotalMentions > summaries[j].TotalMentions
		}
		return summaries[i].Key < summaries[j].Key
	})
	if len(summaries) > topBrandsLimit {
		summaries = summaries[:topBrandsLimit]
	}
	overview.TopBrands = append(overview.TopBrands, summaries...)

	return overview
}
