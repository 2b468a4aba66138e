package generator

import (
	"fmt"
	"math/rand"

	"marketecho/models"
	"marketecho/utils"

	"github.com/apex/log"
	"github.com/shopspring/decimal"
)

// DefaultTarget is the number of brands in a generated dataset
const DefaultTarget = 10000

const maxCollisionAttempts = 10

var distributionPlatforms = []string{
	models.PlatformReddit,
	models.PlatformGoogleSearch,
	models.PlatformYouTube,
}

// Generator fabricates synthetic brand records. Output is deterministic for a
// given seed.
type Generator struct {
	rng *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate builds a table of target brands: all seed brands first, then
// synthetic names until the table is full. Colliding synthetic names get a
// numeric suffix.
func (g *Generator) Generate(target int) models.BrandTable {
	if target < 0 {
		target = 0
	}
	brands := make(models.BrandTable, target)

	for _, seed := range SeedBrands {
		if len(brands) >= target {
			return brands
		}
		key := utils.NormalizeBrandKey(seed.Name)
		if _, exists := brands[key]; exists {
			continue
		}
		brands[key] = g.Record(seed.Name, seed.Category)
	}
	log.Infof("Added %d seed brands", len(brands))

	for len(brands) < target {
		name := g.name()
		for attempts := 0; attempts < maxCollisionAttempts; attempts++ {
			if _, exists := brands[utils.NormalizeBrandKey(name)]; !exists {
				break
			}
			name = fmt.Sprintf("%s %d", g.name(), g.intn(1, 999))
		}

		key := utils.NormalizeBrandKey(name)
		if _, exists := brands[key]; exists {
			continue
		}
		brands[key] = g.Record(name, g.pick(Categories))

		if len(brands)%1000 == 0 {
			log.Infof("Generated %d brands...", len(brands))
		}
	}

	return brands
}

// Record generates a synthetic record for a brand
func (g *Generator) Record(name, category string) models.BrandRecord {
	totalMentions := g.intn(1000, 100000)

	topPlatform := g.pick(distributionPlatforms)
	topMentions := int(float64(totalMentions) * (0.4 + g.rng.Float64()*0.4))
	remaining := totalMentions - topMentions
	secondMentions := int(float64(remaining) * 0.7)
	thirdMentions := remaining - secondMentions

	counts := map[string]int{topPlatform: topMentions}
	others := make([]string, 0, 2)
	for _, p := range distributionPlatforms {
		if p != topPlatform {
			others = append(others, p)
		}
	}
	counts[others[0]] = secondMentions
	counts[others[1]] = thirdMentions

	sovScore := g.intn(1, 40)
	sovMentions := totalMentions * sovScore / 100
	competitors := g.competitors(category, name)
	remainingSOV := 100 - sovScore
	competitorScores := []int{remainingSOV * 5 / 10, remainingSOV * 3 / 10, remainingSOV * 2 / 10}

	shares := make([]models.CompetitorShare, len(competitors))
	for i, c := range competitors {
		shares[i] = models.CompetitorShare{
			Name:     c,
			Score:    competitorScores[i],
			Mentions: sovMentions * competitorScores[i] / sovScore,
		}
	}

	marketScore := g.intn(40, 95)
	categoryAverage := g.intn(50, 70)

	brandScore := g.intn(40, 90)
	competitor1Score := g.intn(40, 90)

	return models.BrandRecord{
		Name:          name,
		Category:      category,
		TotalMentions: totalMentions,
		MentionGrowth: g.intn(-10, 30),
		TopPlatform: models.PlatformMentions{
			Name:     topPlatform,
			Mentions: topMentions,
		},
		PlatformDistribution: models.PlatformDistribution{
			Reddit:       counts[models.PlatformReddit],
			GoogleSearch: counts[models.PlatformGoogleSearch],
			YouTube:      counts[models.PlatformYouTube],
		},
		ShareOfVoice: models.ShareOfVoice{
			Score:       sovScore,
			Mentions:    sovMentions,
			Growth:      g.intn(-5, 10),
			Competitors: shares,
		},
		MarketIndexScore: models.MarketIndexScore{
			Score:           marketScore,
			CategoryAverage: categoryAverage,
			Trend:           FormatTrend(marketScore - categoryAverage),
			Visibility:      g.ratio(),
			Engagement:      g.ratio(),
			Breadth:         g.ratio(),
		},
		PlatformVisibility: models.PlatformVisibility{
			NormalizedScores: models.NormalizedScores{
				Brand:       brandScore,
				Competitor1: competitor1Score,
				Competitor2: g.intn(35, 75),
				Competitor3: g.intn(30, 70),
			},
			StrongestPlatform: models.PlatformScore{
				Name:  topPlatform,
				Score: brandScore,
			},
			CompetitorLeadPlatform: models.CompetitorLeadPlatform{
				Name:       g.pick(distributionPlatforms),
				Competitor: competitors[0],
				Score:      competitor1Score,
			},
		},
	}
}

// FormatTrend renders a signed trend value, e.g. "+7", "-3" or "0".
func FormatTrend(trend int) string {
	if trend > 0 {
		return fmt.Sprintf("+%d", trend)
	}
	return fmt.Sprintf("%d", trend)
}

// competitors picks three distinct competitors from the category pool,
// excluding the brand itself.
func (g *Generator) competitors(category, brandName string) []string {
	pool := competitorPools[category]

	candidates := make([]string, 0, len(pool))
	for _, c := range pool {
		if c != brandName {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) < 3 {
		return append([]string(nil), genericCompetitors...)
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:3]
}

func (g *Generator) name() string {
	prefix := g.pick(prefixes)
	suffix := g.pick(suffixes)

	sep := ""
	if g.rng.Float64() > 0.7 {
		sep = g.pick(separators)
	}
	if sep != "" {
		suffix = utils.ToTitleCase(suffix)
	}
	return prefix + sep + suffix
}

// ratio returns a value in [0.4, 0.9] rounded to two decimals
func (g *Generator) ratio() float64 {
	return decimal.NewFromFloat(0.4 + g.rng.Float64()*0.5).Round(2).InexactFloat64()
}

// intn returns a uniformly distributed int in [lo, hi]
func (g *Generator) intn(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}
