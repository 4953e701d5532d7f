// Package scenario defines the catalog of cultivation scenarios: which CSV
// file each one reads, how it is titled in the composite chart, and the
// caption text shown in the description panel.
package scenario

// Scenario is one (file, title, description) triple. File is resolved
// relative to the data directory chosen by the caller; Description may span
// multiple lines.
type Scenario struct {
	File        string `yaml:"file"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DefaultCatalog returns the built-in four scenarios rendered when no catalog
// file is given. Order here is grid order: top-left, top-right, bottom-left,
// bottom-right.
func DefaultCatalog() []Scenario {
	return []Scenario{
		{
			File:  "cultivation_factor_scenario1.csv",
			Title: "Scenario 1: Single User Demand",
			Description: "User sows at 100% temp limit order with maximum capacity.\n" +
				"CF rises initially, then stays flat until temp returns to 100%.",
		},
		{
			File:  "cultivation_factor_scenario2.csv",
			Title: "Scenario 2: High to Low Demand",
			Description: "User1 sows at 100% temp with high capacity, then User2 sows at 90% with lower capacity.\n" +
				"CF rises initially, then decreases to match User2's capacity.",
		},
		{
			File:  "cultivation_factor_scenario3.csv",
			Title: "Scenario 3: Continuous High Demand",
			Description: "User1 sows at high temp with max capacity, then User2 sows at lower temp.\n" +
				"CF continues to rise despite lower temp due to maintained high capacity.",
		},
		{
			File:  "cultivation_factor_scenario4.csv",
			Title: "Scenario 4: Stable Temperature",
			Description: "Constant temperature scenario testing CF behavior.\n" +
				"CF increases when soil sells out, decreases when it doesn't.",
		},
	}
}
