// cmd/catalog-lint/main.go
//
// catalog-lint checks the achievement catalog for mistakes that are easy
// to introduce when adding entries: duplicate IDs, unknown rarities or
// categories, non-positive thresholds, single_run requirements on stats
// that only exist cumulatively. Run it in CI before shipping a catalog
// change.
package main

import (
	"fmt"
	"os"

	"snowline/models"
	"snowline/services"
)

func main() {
	var problems []string

	seen := make(map[string]bool)
	for _, a := range services.AllAchievements() {
		if a.ID == "" {
			problems = append(problems, "achievement with empty id")
			continue
		}
		if seen[a.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate id", a.ID))
		}
		seen[a.ID] = true

		if a.Name == "" {
			problems = append(problems, fmt.Sprintf("%s: missing name", a.ID))
		}
		if a.Description == "" {
			problems = append(problems, fmt.Sprintf("%s: missing description", a.ID))
		}

		if _, ok := services.GetRarityInfo(a.Rarity); !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown rarity %q", a.ID, a.Rarity))
		}
		if _, ok := services.GetCategoryInfo(a.Category); !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown category %q", a.ID, a.Category))
		}

		if a.Requirement.Value <= 0 {
			problems = append(problems, fmt.Sprintf("%s: requirement value must be positive", a.ID))
		}
		if a.Requirement.Timeframe == "" {
			problems = append(problems, fmt.Sprintf("%s: missing timeframe", a.ID))
		}
		if a.Requirement.Type == models.RequirementCustom && a.Requirement.Condition == "" {
			problems = append(problems, fmt.Sprintf("%s: custom requirement needs a condition", a.ID))
		}

		// These stats only exist as cumulative aggregates.
		if a.Requirement.Timeframe == models.TimeframeSingleRun {
			switch a.Requirement.Type {
			case models.RequirementStreak, models.RequirementResorts:
				problems = append(problems, fmt.Sprintf("%s: %s cannot be a single_run requirement", a.ID, a.Requirement.Type))
			}
		}
	}

	if len(problems) > 0 {
		fmt.Fprintf(os.Stderr, "catalog-lint: %d problem(s) found\n", len(problems))
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		os.Exit(1)
	}

	fmt.Printf("catalog-lint: %d achievements OK\n", services.CatalogSize())
}
