package seed

import "agencypro-backend/models"

func NewHostingServicesSeeder() *CategorySeeder {
	return &CategorySeeder{
		cfg: Config{
			Name:        "hosting-services",
			Description: "Managed hosting and maintenance services",
		},
		records: hostingServiceRecords,
	}
}

var hostingServiceRecords = []ServiceRecord{
	{
		Slug:             "managed-wordpress-hosting",
		Title:            "Managed WordPress Hosting",
		ShortDescription: "Fast, secure hosting with updates, backups and support handled for you.",
		FullDescription:  "Stop worrying about plugin updates, hacked sites and 3am outages. Our managed hosting keeps your WordPress site fast, patched and backed up daily - with a human who knows your site answering when something needs attention.",
		Category:         models.CategorySupport,
		Timeline:         "Same-week migration",
		FeaturedImage:    "/images/services/managed-wordpress-hosting.jpg",
		Features: []FeatureData{
			{Title: "Daily Backups", Description: "Thirty days of restore points, tested monthly.", Icon: "backup"},
			{Title: "Security Hardening", Description: "Firewall, malware scanning and immediate patching.", Icon: "security"},
			{Title: "Performance Tuning", Description: "Server-level caching and a global CDN included.", Icon: "speed"},
			{Title: "Human Support", Description: "Email or call someone who already knows your site.", Icon: "support_agent"},
		},
		Benefits: []string{
			"One predictable bill covers hosting, updates and fixes",
			"A hacked or broken site is our problem, not yours",
			"Faster site speed without lifting a finger",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Migration", Description: "Zero-downtime move from your current host, fully tested.", Duration: "2-4 days"},
			{Title: "Hardening", Description: "Security, caching and monitoring configured.", Duration: "1-2 days"},
			{Title: "Care", Description: "Ongoing updates, backups and support.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Zero-downtime migration",
			"Daily automated backups",
			"Uptime and security monitoring",
			"Monthly maintenance report",
		},
		Technologies: []string{"WordPress", "Cloudflare", "AWS"},
		PricingTiers: []PricingTierData{
			{
				Name:        "Care",
				Price:       "$79/month",
				Description: "Hosting, updates and backups for a standard business site.",
				Features:    []string{"Managed hosting", "Daily backups", "Core and plugin updates", "Uptime monitoring"},
			},
			{
				Name:        "Care Plus",
				Price:       "$149/month",
				Description: "Adds priority support and a monthly content-change allowance.",
				Popular:     true,
				Features:    []string{"Everything in Care", "2 hours of changes/month", "Priority support", "Monthly performance report"},
			},
		},
		Testimonial: &TestimonialData{
			Quote:     "Our site went down on a Saturday. It was fixed before we even noticed - that's why we pay for managed.",
			Author:    "Greg Thornton",
			Company:   "Thornton Landscapes",
			AvatarURL: "/images/testimonials/greg-thornton.jpg",
		},
		FAQs: []FAQData{
			{Question: "Can you migrate us from our current host?", Answer: "Yes, migration is included and we handle the whole thing - DNS, email records and SSL included - with no downtime."},
			{Question: "What counts as a content change on Care Plus?", Answer: "Text and image updates, new blog posts, small layout tweaks. New pages or features are quoted separately."},
		},
	},
}
