// Package seed populates the marketing-site catalog: services with their
// nested collections, the related-services graph, blog taxonomy and posts,
// admin users and the singleton site config. Every operation is exposed
// through a named registry so the CLI (and the admin API) can run or clear
// them individually.
package seed

import (
	"sort"

	"gorm.io/gorm"
)

// Config identifies a seed operation. Order is a sequencing hint for the
// runner; the registry itself does not enforce it.
type Config struct {
	Name        string `json:"name"`
	Order       int    `json:"order"`
	Description string `json:"description"`
}

// Seeder is a self-contained seed operation. Execute returns the number
// of top-level rows inserted (skipped duplicates are not counted).
type Seeder interface {
	Config() Config
	Execute(db *gorm.DB) (int, error)
	Clear(db *gorm.DB) error
}

// Registry returns all seed operations sorted by their order hint.
func Registry() []Seeder {
	seeders := []Seeder{
		NewSiteConfigSeeder(),
		NewUsersSeeder(),
		NewServicesMasterSeeder(),
		NewTaxonomySeeder(),
		NewBlogPostsSeeder(),
	}
	sort.Slice(seeders, func(i, j int) bool {
		return seeders[i].Config().Order < seeders[j].Config().Order
	})
	return seeders
}

// Lookup finds a registered seeder by name.
func Lookup(name string) (Seeder, bool) {
	for _, s := range Registry() {
		if s.Config().Name == name {
			return s, true
		}
	}
	return nil, false
}
