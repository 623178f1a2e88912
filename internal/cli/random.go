package cli

import (
	"math/rand"

	"github.com/ribbonchart/ribbon/pkg/chart"
)

// sampleNames are the item labels used for generated datasets, cycled in order.
var sampleNames = []string{
	"storage", "compute", "network", "backup", "logging",
	"metrics", "cache", "queue", "search", "registry",
	"gateway", "scheduler",
}

// samplePalette holds segment colors in legend order. The hues are spaced so
// adjacent segments stay distinguishable on both light and dark backgrounds.
var samplePalette = []string{
	"#ff6384", "#36a2eb", "#ffce56", "#4bc0c0",
	"#9966ff", "#ff9f40", "#2ecc71", "#e74c3c",
	"#3498db", "#f1c40f", "#1abc9c", "#95a5a6",
}

const (
	minSampleValue = 5   // smallest generated item value
	maxSampleValue = 120 // largest generated item value
)

// randomData generates a dataset with n items using the given seed.
// Values are uniform in [minSampleValue, maxSampleValue); names and colors
// cycle through fixed palettes so repeated runs with the same seed are
// byte-for-byte reproducible.
func randomData(n int, seed int64) chart.Data {
	rng := rand.New(rand.NewSource(seed))

	items := make([]chart.Item, n)
	for i := range items {
		items[i] = chart.Item{
			Name:  sampleNames[i%len(sampleNames)],
			Value: float64(minSampleValue) + rng.Float64()*float64(maxSampleValue-minSampleValue),
			Color: samplePalette[i%len(samplePalette)],
		}
	}

	return chart.Data{
		Title: "Resource usage",
		Items: items,
	}
}
