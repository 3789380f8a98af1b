package seed

import "agencypro-backend/models"

func NewDesignServicesSeeder() *CategorySeeder {
	return &CategorySeeder{
		cfg: Config{
			Name:        "design-services",
			Description: "Brand, UX and conversion design services",
		},
		records: designServiceRecords,
	}
}

var designServiceRecords = []ServiceRecord{
	{
		Slug:             "ui-ux-design",
		Title:            "UI/UX Design",
		ShortDescription: "Interfaces designed around how your customers actually behave.",
		FullDescription:  "Good design isn't decoration - it's the difference between a visitor who converts and one who leaves confused. We research, prototype and test interfaces for websites and apps so every screen earns its place.",
		Category:         models.CategoryDesign,
		Timeline:         "3-6 weeks",
		FeaturedImage:    "/images/services/ui-ux-design.jpg",
		Features: []FeatureData{
			{Title: "User Research", Description: "Decisions grounded in real user behavior, not taste.", Icon: "psychology"},
			{Title: "Interactive Prototypes", Description: "Click through the product before a line of code is written.", Icon: "touch_app"},
			{Title: "Design System", Description: "Reusable components that keep future work consistent.", Icon: "grid_view"},
		},
		Benefits: []string{
			"Fewer support questions because the interface explains itself",
			"Higher conversion from clearer user journeys",
			"Faster development from a ready-made component library",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Research", Description: "User interviews, analytics review and journey mapping.", Duration: "1 week"},
			{Title: "Wireframe & Prototype", Description: "Low-fi structure, then clickable high-fidelity prototypes.", Duration: "1-2 weeks"},
			{Title: "Test & Refine", Description: "Usability testing with real users, then final polish.", Duration: "1-2 weeks"},
		},
		Deliverables: []string{
			"User journey maps",
			"Interactive prototype",
			"Design system and component library",
			"Developer handoff files",
		},
		Technologies: []string{"Figma", "Maze", "Hotjar"},
		Testimonial: &TestimonialData{
			Quote:     "Support tickets about 'how do I book' dropped to zero after the redesign. That says it all.",
			Author:    "Aisha Karim",
			Company:   "GlowUp Studios",
			AvatarURL: "/images/testimonials/aisha-karim.jpg",
		},
		FAQs: []FAQData{
			{Question: "Do you also build what you design?", Answer: "We can - our development team works from the same design system. Or we hand off fully documented files to your developers."},
		},
	},
	{
		Slug:             "brand-identity-design",
		Title:            "Brand Identity Design",
		ShortDescription: "A visual identity that makes your business memorable and trusted.",
		FullDescription:  "Your brand is what customers remember after the tab is closed. We craft complete visual identities - logo, color, typography, voice - with guidelines that keep every future touchpoint consistent, from business cards to billboards.",
		Category:         models.CategoryDesign,
		Timeline:         "3-5 weeks",
		FeaturedImage:    "/images/services/brand-identity-design.jpg",
		Features: []FeatureData{
			{Title: "Logo Suite", Description: "Primary, secondary and icon marks for every context.", Icon: "interests"},
			{Title: "Brand Guidelines", Description: "A practical rulebook anyone on your team can follow.", Icon: "menu_book"},
			{Title: "Collateral Templates", Description: "Social, print and presentation templates ready to use.", Icon: "collections"},
		},
		Benefits: []string{
			"Look as professional as the work you deliver",
			"Consistency across every channel without policing it",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Brand Discovery", Description: "Positioning, audience and competitor landscape workshop.", Duration: "1 week"},
			{Title: "Concepts", Description: "Two or three distinct identity directions to react to.", Duration: "1-2 weeks"},
			{Title: "Refine & Deliver", Description: "Chosen direction refined, full asset package delivered.", Duration: "1-2 weeks"},
		},
		Deliverables: []string{
			"Logo files in all formats",
			"Brand guidelines document",
			"Stationery and social templates",
		},
		Technologies: []string{"Figma", "Adobe Illustrator"},
		FAQs: []FAQData{
			{Question: "We already have a logo - can you work around it?", Answer: "Yes. Plenty of projects are brand refreshes that keep a recognizable mark while modernizing everything around it."},
			{Question: "How many revisions are included?", Answer: "Two structured revision rounds per phase. In practice the discovery workshop means we rarely need the second."},
		},
	},
	{
		Slug:             "conversion-rate-optimization",
		Title:            "Conversion Rate Optimization",
		ShortDescription: "Turn more of your existing visitors into enquiries and sales.",
		FullDescription:  "Doubling your conversion rate has the same effect as doubling your traffic - at a fraction of the cost. We find where visitors drop off using recordings, heatmaps and analytics, then run disciplined A/B tests to fix it.",
		Category:         models.CategoryDesign,
		Timeline:         "Ongoing, 3-month minimum",
		FeaturedImage:    "/images/services/conversion-rate-optimization.jpg",
		Features: []FeatureData{
			{Title: "Behavior Analysis", Description: "Session recordings and heatmaps show exactly where users stall.", Icon: "videocam"},
			{Title: "A/B Testing", Description: "Changes proven with data before they go permanent.", Icon: "compare"},
			{Title: "Funnel Reporting", Description: "Every step of the journey measured, monthly.", Icon: "filter_alt"},
		},
		Benefits: []string{
			"More revenue from the traffic you already pay for",
			"Decisions backed by experiments, not opinions",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Instrument", Description: "Analytics, recordings and heatmap tooling installed.", Duration: "1 week"},
			{Title: "Diagnose", Description: "Funnel analysis and a prioritized list of test hypotheses.", Duration: "2 weeks"},
			{Title: "Test & Iterate", Description: "Continuous A/B testing cycle with monthly results reviews.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Conversion audit report",
			"Prioritized testing roadmap",
			"Monthly experiment results",
		},
		Technologies: []string{"Hotjar", "Google Analytics", "VWO"},
		FAQs: []FAQData{
			{Question: "How much traffic do we need for A/B testing?", Answer: "Roughly 1,000 visitors a month per tested page for results in a reasonable timeframe. Below that we rely on qualitative analysis, which still finds plenty."},
		},
	},
}
