package catalog

import "github.com/shopspring/decimal"

const (
	GradeBronze        Grade = "bronze"
	GradeSilver        Grade = "silver"
	GradeGold          Grade = "gold"
	GradeTouring       Grade = "touring"
	GradeJunior        Grade = "junior"
	GradeJuniorGold    Grade = "junior-gold"
	GradeSBProgression Grade = "sb-progression"
	GradeSBExpert      Grade = "sb-expert"
	GradeSBKids        Grade = "sb-kids"
)

const (
	PackageFullKit          Package = "full-kit"
	PackageFullKitHelmet    Package = "full-kit-helmet"
	PackageSkisPoles        Package = "skis-poles"
	PackageSkiBoots         Package = "ski-boots"
	PackageTouringBoots     Package = "touring-boots"
	PackageBoardBoots       Package = "board-boots"
	PackageBoardBootsHelmet Package = "board-boots-helmet"
	PackageBoardOnly        Package = "board-only"
	PackageSBBoots          Package = "sb-boots"
)

var packageLabels = map[Package]string{
	PackageFullKit:          "Full Kit",
	PackageFullKitHelmet:    "Full Kit + Helmet",
	PackageSkisPoles:        "Skis + Poles",
	PackageSkiBoots:         "Ski Boots",
	PackageTouringBoots:     "Touring Boots",
	PackageBoardBoots:       "Board + Boots",
	PackageBoardBootsHelmet: "Board + Boots + Helmet",
	PackageBoardOnly:        "Board Only",
	PackageSBBoots:          "Snowboard Boots",
}

type row struct {
	pkg    Package
	prices [Tiers]float64
}

var defaultTable = []struct {
	grade Grade
	label string
	rows  []row
}{
	{GradeBronze, "Gama Bronce", []row{
		{PackageFullKit, [Tiers]float64{21.00, 38.50, 49.00, 58.00, 67.50}},
		{PackageFullKitHelmet, [Tiers]float64{27.50, 47.50, 62.00, 73.00, 83.50}},
		{PackageSkisPoles, [Tiers]float64{18.50, 34.00, 46.00, 55.50, 63.50}},
		{PackageSkiBoots, [Tiers]float64{9.00, 15.50, 21.00, 26.00, 28.00}},
	}},
	{GradeSilver, "Gama Plata", []row{
		{PackageFullKit, [Tiers]float64{26.00, 46.50, 66.00, 83.50, 99.50}},
		{PackageFullKitHelmet, [Tiers]float64{32.00, 55.50, 78.50, 98.50, 114.50}},
		{PackageSkisPoles, [Tiers]float64{23.50, 44.00, 63.50, 81.00, 97.00}},
		{PackageSkiBoots, [Tiers]float64{13.00, 24.00, 34.50, 42.50, 49.00}},
	}},
	{GradeGold, "Gama Oro", []row{
		{PackageFullKit, [Tiers]float64{35.50, 65.00, 92.00, 120.00, 138.00}},
		{PackageFullKitHelmet, [Tiers]float64{42.00, 75.50, 106.00, 136.00, 155.50}},
		{PackageSkisPoles, [Tiers]float64{31.50, 53.00, 72.00, 90.50, 107.50}},
		{PackageSkiBoots, [Tiers]float64{14.50, 26.00, 36.00, 44.00, 50.50}},
	}},
	{GradeTouring, "Travesía", []row{
		{PackageFullKit, [Tiers]float64{35.50, 65.00, 92.00, 120.00, 138.00}},
		{PackageFullKitHelmet, [Tiers]float64{42.00, 75.50, 106.00, 136.00, 155.50}},
		{PackageSkisPoles, [Tiers]float64{31.50, 53.00, 72.00, 90.50, 107.50}},
		{PackageTouringBoots, [Tiers]float64{14.50, 26.00, 36.00, 44.00, 50.50}},
	}},
	{GradeJunior, "Infantil (<= 13 años)", []row{
		{PackageFullKit, [Tiers]float64{17.00, 30.50, 38.50, 50.00, 54.50}},
		{PackageFullKitHelmet, [Tiers]float64{23.50, 40.00, 51.50, 65.00, 71.50}},
		{PackageSkisPoles, [Tiers]float64{14.50, 24.00, 34.00, 40.00, 45.00}},
		{PackageSkiBoots, [Tiers]float64{7.50, 11.50, 14.50, 17.00, 19.50}},
	}},
	{GradeJuniorGold, "Infantil Oro (<= 13 años)", []row{
		{PackageFullKit, [Tiers]float64{23.50, 42.50, 54.00, 69.00, 76.00}},
		{PackageFullKitHelmet, [Tiers]float64{29.00, 51.50, 66.00, 83.50, 92.00}},
		{PackageSkisPoles, [Tiers]float64{22.00, 41.00, 52.00, 67.50, 74.50}},
		{PackageSkiBoots, [Tiers]float64{10.00, 16.00, 22.00, 26.50, 30.50}},
	}},
	{GradeSBProgression, "Snowboard Progresión", []row{
		{PackageBoardBoots, [Tiers]float64{27.50, 49.00, 68.00, 84.50, 98.00}},
		{PackageBoardBootsHelmet, [Tiers]float64{34.00, 58.50, 82.00, 100.00, 115.50}},
		{PackageBoardOnly, [Tiers]float64{20.00, 36.00, 52.00, 66.00, 79.50}},
		{PackageSBBoots, [Tiers]float64{10.50, 18.50, 26.00, 32.00, 38.50}},
	}},
	{GradeSBExpert, "Snowboard Experto", []row{
		{PackageBoardBoots, [Tiers]float64{32.00, 58.50, 75.50, 93.00, 100.00}},
		{PackageBoardBootsHelmet, [Tiers]float64{37.00, 66.50, 86.00, 106.00, 114.00}},
		{PackageBoardOnly, [Tiers]float64{27.50, 48.00, 66.50, 82.00, 87.50}},
		{PackageSBBoots, [Tiers]float64{11.50, 19.50, 26.50, 33.00, 39.50}},
	}},
	{GradeSBKids, "Snowboard Niño", []row{
		{PackageBoardBoots, [Tiers]float64{22.00, 37.00, 51.50, 65.00, 74.50}},
		{PackageBoardBootsHelmet, [Tiers]float64{28.00, 46.00, 65.00, 80.00, 93.00}},
		{PackageBoardOnly, [Tiers]float64{18.00, 32.00, 45.00, 57.00, 71.50}},
		{PackageSBBoots, [Tiers]float64{7.50, 11.50, 14.50, 17.00, 19.50}},
	}},
}

var defaultCatalog = mustBuildDefault()

// Default returns the built-in price list.
func Default() *Catalog { return defaultCatalog }

// DefaultGrades returns a fresh copy of the built-in price list entries.
func DefaultGrades() []GradeEntry {
	out := make([]GradeEntry, 0, len(defaultTable))
	for _, g := range defaultTable {
		entry := GradeEntry{Grade: g.grade, Label: g.label}
		for _, r := range g.rows {
			pe := PackageEntry{Package: r.pkg, Label: packageLabels[r.pkg]}
			for i, p := range r.prices {
				pe.Prices[i] = decimal.NewFromFloat(p)
			}
			entry.Packages = append(entry.Packages, pe)
		}
		out = append(out, entry)
	}
	return out
}

func mustBuildDefault() *Catalog {
	c, err := New(DefaultGrades())
	if err != nil {
		panic(err)
	}
	return c
}
