package seed

import (
	"testing"

	"agencypro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalStaticRecords(master *ServicesMasterSeeder) int {
	total := 0
	for _, m := range master.modules {
		total += len(m.records)
	}
	return total
}

func totalRelationshipPairs() int {
	total := 0
	for _, g := range serviceRelationships {
		total += len(g.Targets)
	}
	return total
}

func TestServicesMasterFreshSeed(t *testing.T) {
	db := openTestDB(t)
	master := NewServicesMasterSeeder()

	count, err := master.Execute(db)
	require.NoError(t, err)
	assert.Equal(t, totalStaticRecords(master), count)

	var serviceCount int64
	require.NoError(t, db.Model(&models.Service{}).Count(&serviceCount).Error)
	assert.EqualValues(t, totalStaticRecords(master), serviceCount)

	// Every hand-authored pair resolves against the full catalog, so
	// the edge table carries one row per pair.
	var edgeCount int64
	require.NoError(t, db.Model(&models.RelatedService{}).Count(&edgeCount).Error)
	assert.EqualValues(t, totalRelationshipPairs(), edgeCount)
}

func TestServicesMasterRelationshipIntegrity(t *testing.T) {
	db := openTestDB(t)
	master := NewServicesMasterSeeder()

	_, err := master.Execute(db)
	require.NoError(t, err)

	// No dangling edges in either direction
	var dangling int64
	require.NoError(t, db.Model(&models.RelatedService{}).
		Where("service_id NOT IN (?)", db.Model(&models.Service{}).Select("id")).
		Count(&dangling).Error)
	assert.Zero(t, dangling)

	require.NoError(t, db.Model(&models.RelatedService{}).
		Where("related_service_id NOT IN (?)", db.Model(&models.Service{}).Select("id")).
		Count(&dangling).Error)
	assert.Zero(t, dangling)
}

func TestServicesMasterIdempotentRerun(t *testing.T) {
	db := openTestDB(t)
	master := NewServicesMasterSeeder()

	first, err := master.Execute(db)
	require.NoError(t, err)
	require.Positive(t, first)

	second, err := master.Execute(db)
	require.NoError(t, err)
	assert.Zero(t, second, "re-running must not duplicate services")

	var serviceCount, edgeCount int64
	require.NoError(t, db.Model(&models.Service{}).Count(&serviceCount).Error)
	require.NoError(t, db.Model(&models.RelatedService{}).Count(&edgeCount).Error)
	assert.EqualValues(t, totalStaticRecords(master), serviceCount)
	assert.EqualValues(t, totalRelationshipPairs(), edgeCount, "edges are rebuilt, not duplicated")
}

func TestLinkRelatedServicesSkipsMissingSlugs(t *testing.T) {
	db := openTestDB(t)

	// Only the web category is present, so marketing slugs are missing.
	web := NewWebServicesSeeder()
	_, err := web.Execute(db)
	require.NoError(t, err)

	edges, err := linkRelatedServices(db, []relationshipGroup{
		{Source: "custom-website-development", Targets: []string{"website-redesign", "missing-slug"}},
	})
	require.NoError(t, err, "a missing target must not fail the run")
	assert.Equal(t, 1, edges)

	var edgeCount int64
	require.NoError(t, db.Model(&models.RelatedService{}).Count(&edgeCount).Error)
	assert.EqualValues(t, 1, edgeCount)
}

func TestLinkRelatedServicesSkipsMissingSourceGroup(t *testing.T) {
	db := openTestDB(t)

	web := NewWebServicesSeeder()
	_, err := web.Execute(db)
	require.NoError(t, err)

	edges, err := linkRelatedServices(db, []relationshipGroup{
		{Source: "never-seeded", Targets: []string{"custom-website-development"}},
	})
	require.NoError(t, err)
	assert.Zero(t, edges)
}

func TestOrderPreservation(t *testing.T) {
	db := openTestDB(t)

	web := NewWebServicesSeeder()
	_, err := web.Execute(db)
	require.NoError(t, err)

	rec := webServiceRecords[0]

	var service models.Service
	require.NoError(t, db.Where("slug = ?", rec.Slug).First(&service).Error)

	var features []models.ServiceFeature
	require.NoError(t, db.Where("service_id = ?", service.ID).Order("sort_order ASC").Find(&features).Error)
	require.Len(t, features, len(rec.Features))
	for i, f := range features {
		assert.Equal(t, rec.Features[i].Title, f.Title)
		assert.Equal(t, i+1, f.SortOrder)
	}

	var steps []models.ProcessStep
	require.NoError(t, db.Where("service_id = ?", service.ID).Order("sort_order ASC").Find(&steps).Error)
	require.Len(t, steps, len(rec.ProcessSteps))
	for i, s := range steps {
		assert.Equal(t, rec.ProcessSteps[i].Title, s.Title)
		assert.Equal(t, i+1, s.StepNumber)
	}
}

func TestCategoryClearIsCascadingAndScoped(t *testing.T) {
	db := openTestDB(t)
	master := NewServicesMasterSeeder()

	total, err := master.Execute(db)
	require.NoError(t, err)

	web := NewWebServicesSeeder()
	require.NoError(t, web.Clear(db))

	// Other categories untouched
	var serviceCount int64
	require.NoError(t, db.Model(&models.Service{}).Count(&serviceCount).Error)
	assert.EqualValues(t, total-len(webServiceRecords), serviceCount)

	// No child rows left behind for any table
	childModels := []interface{}{
		&models.ServiceFeature{}, &models.ServiceBenefit{}, &models.ProcessStep{},
		&models.ServiceDeliverable{}, &models.ServiceTechnology{}, &models.GalleryImage{},
		&models.PricingTier{}, &models.Testimonial{}, &models.ServiceFAQ{},
	}
	for _, child := range childModels {
		var orphans int64
		require.NoError(t, db.Model(child).
			Where("service_id NOT IN (?)", db.Model(&models.Service{}).Select("id")).
			Count(&orphans).Error)
		assert.Zero(t, orphans, "%T rows must be removed with their parent", child)
	}

	var orphanPricingFeatures int64
	require.NoError(t, db.Model(&models.PricingFeature{}).
		Where("pricing_tier_id NOT IN (?)", db.Model(&models.PricingTier{}).Select("id")).
		Count(&orphanPricingFeatures).Error)
	assert.Zero(t, orphanPricingFeatures)

	// No edge may reference a cleared service from either side
	var danglingEdges int64
	require.NoError(t, db.Model(&models.RelatedService{}).
		Where("service_id NOT IN (?) OR related_service_id NOT IN (?)",
			db.Model(&models.Service{}).Select("id"),
			db.Model(&models.Service{}).Select("id")).
		Count(&danglingEdges).Error)
	assert.Zero(t, danglingEdges)
}

func TestReseedAfterPartialClear(t *testing.T) {
	db := openTestDB(t)
	master := NewServicesMasterSeeder()

	total, err := master.Execute(db)
	require.NoError(t, err)

	web := NewWebServicesSeeder()
	require.NoError(t, web.Clear(db))

	reseeded, err := web.Execute(db)
	require.NoError(t, err)
	assert.Equal(t, len(webServiceRecords), reseeded)

	// Categories that were not cleared must not gain duplicates
	var serviceCount int64
	require.NoError(t, db.Model(&models.Service{}).Count(&serviceCount).Error)
	assert.EqualValues(t, total, serviceCount)

	var slugDupes int64
	require.NoError(t, db.Model(&models.Service{}).
		Select("COUNT(*) - COUNT(DISTINCT slug)").
		Scan(&slugDupes).Error)
	assert.Zero(t, slugDupes)
}

func TestSiteConfigSingleton(t *testing.T) {
	db := openTestDB(t)
	seeder := NewSiteConfigSeeder()

	first, err := seeder.Execute(db)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := seeder.Execute(db)
	require.NoError(t, err)
	assert.Zero(t, second, "singleton is only created when the table is empty")

	var count int64
	require.NoError(t, db.Model(&models.SiteConfig{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUsersSeederIdempotentByEmail(t *testing.T) {
	db := openTestDB(t)
	seeder := NewUsersSeeder()

	first, err := seeder.Execute(db)
	require.NoError(t, err)
	assert.Equal(t, len(seedUsers), first)

	second, err := seeder.Execute(db)
	require.NoError(t, err)
	assert.Zero(t, second)
}
