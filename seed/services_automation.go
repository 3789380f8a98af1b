package seed

import "agencypro-backend/models"

func NewAutomationServicesSeeder() *CategorySeeder {
	return &CategorySeeder{
		cfg: Config{
			Name:        "automation-services",
			Description: "CRM, workflow and integration services",
		},
		records: automationServiceRecords,
	}
}

var automationServiceRecords = []ServiceRecord{
	{
		Slug:             "crm-integration",
		Title:            "CRM Integration",
		ShortDescription: "Every lead from every channel, captured in one CRM automatically.",
		FullDescription:  "Leads from your website, ads, phone and email should land in one place with nothing typed twice. We set up and integrate your CRM so every enquiry is captured, assigned and followed up - and nothing falls through the cracks.",
		Category:         models.CategorySupport,
		Timeline:         "2-4 weeks",
		FeaturedImage:    "/images/services/crm-integration.jpg",
		Features: []FeatureData{
			{Title: "Lead Capture Wiring", Description: "Forms, calls and chats pushed straight into the CRM.", Icon: "input"},
			{Title: "Pipeline Setup", Description: "Stages that mirror how your sales process actually works.", Icon: "view_kanban"},
			{Title: "Follow-Up Automation", Description: "Instant acknowledgements and task assignment on every new lead.", Icon: "assignment_turned_in"},
		},
		Benefits: []string{
			"No more leads lost in inboxes and sticky notes",
			"Know your pipeline value at a glance",
			"Faster first response - the biggest factor in closing leads",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Process Mapping", Description: "Document how leads arrive and how your team handles them.", Duration: "3-5 days"},
			{Title: "Setup & Integrate", Description: "CRM configuration and channel integrations.", Duration: "1-2 weeks"},
			{Title: "Train & Tune", Description: "Team training plus a tuning pass after two weeks of real use.", Duration: "1 week"},
		},
		Deliverables: []string{
			"Configured CRM",
			"Channel integrations",
			"Automated follow-up sequences",
			"Team training session",
		},
		Technologies: []string{"HubSpot", "Pipedrive", "Zapier", "Make"},
		PricingTiers: []PricingTierData{
			{
				Name:        "Setup",
				Price:       "$2,500",
				Description: "CRM configured and connected to your lead sources.",
				Popular:     true,
				Features:    []string{"CRM configuration", "Website form integration", "Email integration", "Team training"},
			},
			{
				Name:        "Setup + Automation",
				Price:       "$4,500",
				Description: "Everything in Setup plus automated follow-up workflows.",
				Features:    []string{"Everything in Setup", "Automated sequences", "Call tracking integration", "30 days of tuning"},
			},
		},
		FAQs: []FAQData{
			{Question: "Which CRM do you recommend?", Answer: "For most local businesses, HubSpot's free tier or Pipedrive covers everything needed. We recommend based on your process, not referral commissions."},
		},
	},
	{
		Slug:             "workflow-automation",
		Title:            "Workflow Automation",
		ShortDescription: "Kill the copy-paste: connect your tools so data moves itself.",
		FullDescription:  "Every hour your team spends re-typing data between systems is an hour you're paying twice for. We find the repetitive handoffs in your operations and automate them with reliable, monitored workflows.",
		Category:         models.CategorySupport,
		Timeline:         "2-6 weeks",
		FeaturedImage:    "/images/services/workflow-automation.jpg",
		Features: []FeatureData{
			{Title: "Process Audit", Description: "We map your workflows and price the manual waste.", Icon: "search"},
			{Title: "Reliable Automations", Description: "Error handling and alerts, not fragile one-off zaps.", Icon: "settings_suggest"},
			{Title: "Monitoring", Description: "Failures surface immediately instead of silently piling up.", Icon: "monitor_heart"},
		},
		Benefits: []string{
			"Hours back every week for actual work",
			"Fewer mistakes from manual re-entry",
			"Processes that scale without new hires",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Audit", Description: "Identify and prioritize automatable workflows by time saved.", Duration: "1 week"},
			{Title: "Build", Description: "Automations built and tested against real data.", Duration: "1-4 weeks"},
			{Title: "Monitor", Description: "30 days of monitoring with fixes included.", Duration: "30 days"},
		},
		Deliverables: []string{
			"Automation audit report",
			"Built and tested workflows",
			"Monitoring and alerting",
			"Process documentation",
		},
		Technologies: []string{"Zapier", "Make", "Airtable", "Slack"},
		Testimonial: &TestimonialData{
			Quote:     "Invoicing used to eat my Friday afternoons. Now it happens by itself and I actually leave on time.",
			Author:    "Marcus Bell",
			Company:   "Bell Electrical Services",
			AvatarURL: "/images/testimonials/marcus-bell.jpg",
		},
		FAQs: []FAQData{
			{Question: "What if one of our tools doesn't have an integration?", Answer: "Most modern tools expose an API even when there's no off-the-shelf connector - that's what our API integration service covers."},
		},
	},
	{
		Slug:             "api-integration-services",
		Title:            "API Integration Services",
		ShortDescription: "Custom connections between systems that don't talk out of the box.",
		FullDescription:  "When off-the-shelf connectors run out, we write the glue: custom API integrations that sync your booking system with your accounts package, your store with your warehouse, your CRM with anything. Built properly, with retries, logging and alerts.",
		Category:         models.CategorySupport,
		Timeline:         "3-8 weeks",
		FeaturedImage:    "/images/services/api-integration-services.jpg",
		Features: []FeatureData{
			{Title: "Custom Connectors", Description: "Purpose-built integrations for any system with an API.", Icon: "cable"},
			{Title: "Resilient Sync", Description: "Retries, deduplication and conflict handling built in.", Icon: "sync"},
			{Title: "Audit Logging", Description: "Every record that moves is traceable end to end.", Icon: "receipt_long"},
		},
		Benefits: []string{
			"One source of truth across your systems",
			"Integrations that survive vendor API changes",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Technical Discovery", Description: "API capabilities, data mapping and sync rules.", Duration: "1 week"},
			{Title: "Build & Test", Description: "Integration development with sandbox testing.", Duration: "2-6 weeks"},
			{Title: "Deploy & Monitor", Description: "Production rollout with monitoring and alerting.", Duration: "1 week"},
		},
		Deliverables: []string{
			"Custom integration service",
			"Data mapping documentation",
			"Monitoring and alerting",
		},
		Technologies: []string{"Go", "PostgreSQL", "Redis", "AWS Lambda"},
		FAQs: []FAQData{
			{Question: "What happens when a vendor changes their API?", Answer: "Integrations are versioned and monitored; most vendor changes are absorbed under the support agreement without downtime."},
		},
	},
	{
		Slug:             "review-management",
		Title:            "Review Management",
		ShortDescription: "Systematically earn the reviews that win local customers.",
		FullDescription:  "Nine out of ten customers read reviews before calling. We automate the ask - at the moment customers are happiest - route unhappy feedback to you privately, and keep your public profiles full of fresh five-star proof.",
		Category:         models.CategorySupport,
		Timeline:         "1-2 weeks setup, then ongoing",
		FeaturedImage:    "/images/services/review-management.jpg",
		Features: []FeatureData{
			{Title: "Automated Requests", Description: "Review invitations triggered by completed jobs or purchases.", Icon: "reviews"},
			{Title: "Feedback Routing", Description: "Unhappy customers reach you first, not Google.", Icon: "fork_right"},
			{Title: "Response Service", Description: "Every public review gets a considered reply.", Icon: "reply"},
		},
		Benefits: []string{
			"A review profile that closes deals before you pick up the phone",
			"Problems handled privately before they become public",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Setup", Description: "Connect your job or sales system to the review platform.", Duration: "1 week"},
			{Title: "Run", Description: "Automated requests, response drafting and monthly reporting.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Automated review request system",
			"Review response management",
			"Monthly reputation report",
		},
		Technologies: []string{"Podium", "Zapier"},
		FAQs: []FAQData{
			{Question: "Is asking for reviews allowed?", Answer: "Yes - asking is fine on every major platform. What's not allowed is paying for reviews or gating who you ask, and we never do either."},
		},
	},
}
