package seed

import (
	"context"
	"fmt"
	"math/rand"

	"campushelp/internal/store"
	"campushelp/pkg/types"
)

var fakeHelpDescriptions = []string{
	"Wifi keeps dropping in hostel B, anyone else seeing this?",
	"Need a study partner for the data structures midterm.",
	"Laptop won't boot after the latest update, looking for help.",
	"Looking for notes from last week's networking lecture.",
	"Printer on the second floor is jammed again, who maintains it?",
	"Need help setting up a development environment for the course project.",
	"Can someone explain the grading rubric for the group assignment?",
	"My dorm room ethernet port is dead, where do I report it?",
	"Searching for teammates for the upcoming hackathon.",
	"Stuck on a segfault in the operating systems lab.",
}

var fakeTags = []string{"wifi", "hostel", "exam", "notes", "lab", "project", "urgent", "hardware"}

type weightedCategory struct {
	Category types.Category
	Weight   int
}

var weightedCategories = []weightedCategory{
	{Category: types.CategoryCoding, Weight: 25},
	{Category: types.CategoryCollegeRelated, Weight: 20},
	{Category: types.CategoryNetworking, Weight: 20},
	{Category: types.CategoryHardware, Weight: 15},
	{Category: types.CategoryMiscellaneous, Weight: 10},
	{Category: types.CategoryOther, Weight: 10},
}

var fakeLostFoundDescriptions = []string{
	"Found a black umbrella in lecture hall 3.",
	"Lost my student ID card somewhere near the cafeteria.",
	"Blue water bottle left behind in the library reading room.",
	"Found a set of keys with a red keychain by the gym entrance.",
	"Lost a calculator during the physics exam, has my name on the back.",
	"Found wireless earbuds on the bench outside building C.",
	"Missing a grey hoodie from the common room.",
	"Found a USB drive in lab 2, describe the contents to claim.",
}

// SeedHelpRequests inserts count fake help requests with weighted categories
// and a small random tag set.
func SeedHelpRequests(ctx context.Context, repo store.HelpRequestRepository, count int) error {
	for i := 0; i < count; i++ {
		req := &types.HelpRequest{
			Description: fakeHelpDescriptions[rand.Intn(len(fakeHelpDescriptions))],
			Category:    pickCategory(),
			Tags:        pickTags(),
		}

		if err := repo.Create(ctx, req); err != nil {
			return fmt.Errorf("failed to seed help request %d: %w", i, err)
		}
	}

	return nil
}

// SeedLostFound inserts count fake lost-and-found items.
func SeedLostFound(ctx context.Context, repo store.LostFoundRepository, count int) error {
	for i := 0; i < count; i++ {
		item := &types.LostFound{
			Description: fakeLostFoundDescriptions[rand.Intn(len(fakeLostFoundDescriptions))],
		}

		if err := repo.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to seed lost and found item %d: %w", i, err)
		}
	}

	return nil
}

func pickCategory() types.Category {
	total := 0
	for _, wc := range weightedCategories {
		total += wc.Weight
	}

	n := rand.Intn(total)
	for _, wc := range weightedCategories {
		n -= wc.Weight
		if n < 0 {
			return wc.Category
		}
	}

	return types.CategoryOther
}

func pickTags() []string {
	n := rand.Intn(4)
	tags := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(tags) < n {
		tag := fakeTags[rand.Intn(len(fakeTags))]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
