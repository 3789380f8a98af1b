package models

// All returns every model in the order AutoMigrate should create them
// (parents before children).
func All() []interface{} {
	return []interface{}{
		&User{},
		&SiteConfig{},
		&Service{},
		&ServiceFeature{},
		&ServiceBenefit{},
		&ProcessStep{},
		&ServiceDeliverable{},
		&ServiceTechnology{},
		&GalleryImage{},
		&PricingTier{},
		&PricingFeature{},
		&Testimonial{},
		&ServiceFAQ{},
		&RelatedService{},
		&BlogCategory{},
		&Author{},
		&Tag{},
		&BlogPost{},
		&Lead{},
	}
}
