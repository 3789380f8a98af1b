package seed

import "agencypro-backend/models"

func NewMarketingServicesSeeder() *CategorySeeder {
	return &CategorySeeder{
		cfg: Config{
			Name:        "marketing-services",
			Description: "Search, ads and content marketing services",
		},
		records: marketingServiceRecords,
	}
}

var marketingServiceRecords = []ServiceRecord{
	{
		Slug:             "seo-optimization",
		Title:            "SEO Optimization",
		ShortDescription: "Climb the rankings for the searches your customers actually make.",
		FullDescription:  "No tricks, no guarantees of overnight miracles - just the technical fixes, content strategy and authority building that move rankings month after month. You get a transparent report every month showing exactly what we did and what it earned.",
		Category:         models.CategoryMarketing,
		Timeline:         "Ongoing, 3-month minimum",
		FeaturedImage:    "/images/services/seo-optimization.jpg",
		Features: []FeatureData{
			{Title: "Technical SEO Audit", Description: "Crawlability, speed, indexing and structured data fixed first.", Icon: "build"},
			{Title: "Keyword Strategy", Description: "Target terms chosen by buying intent, not vanity volume.", Icon: "query_stats"},
			{Title: "Content Optimization", Description: "Existing pages rewritten to match what searchers want.", Icon: "article"},
			{Title: "Link Building", Description: "Earned mentions from relevant, reputable sites.", Icon: "link"},
		},
		Benefits: []string{
			"Traffic that compounds instead of stopping when ads stop",
			"Leads from people already searching for what you sell",
			"Clear monthly reporting tied to revenue, not rankings alone",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Audit & Baseline", Description: "Full technical audit plus current ranking and traffic baseline.", Duration: "2 weeks"},
			{Title: "Fix & Optimize", Description: "Technical fixes shipped, priority pages optimized.", Duration: "4-6 weeks"},
			{Title: "Build & Report", Description: "Ongoing content and links with monthly reporting.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Technical audit report",
			"Keyword and content roadmap",
			"Monthly performance reports",
		},
		Technologies: []string{"Ahrefs", "Google Search Console", "Screaming Frog"},
		PricingTiers: []PricingTierData{
			{
				Name:        "Local",
				Price:       "$950/month",
				Description: "For businesses competing in one city or region.",
				Features:    []string{"Technical maintenance", "4 optimized pages/month", "Local citations", "Monthly report"},
			},
			{
				Name:        "Growth",
				Price:       "$1,900/month",
				Description: "For businesses targeting multiple markets or tougher keywords.",
				Popular:     true,
				Features:    []string{"Everything in Local", "8 optimized pages/month", "Link building campaign", "Quarterly strategy review"},
			},
		},
		Testimonial: &TestimonialData{
			Quote:     "Eighteen months in, organic search is our biggest source of new clients - ahead of referrals.",
			Author:    "Tom Whitfield",
			Company:   "Whitfield Plumbing & Heating",
			AvatarURL: "/images/testimonials/tom-whitfield.jpg",
		},
		FAQs: []FAQData{
			{Question: "How long until we see results?", Answer: "Meaningful movement typically takes 3-6 months. Anyone promising page one in 30 days is selling something that will get you penalized."},
			{Question: "Do you guarantee rankings?", Answer: "No honest agency can. We guarantee the work, full transparency, and that you own everything we produce."},
		},
	},
	{
		Slug:             "google-ads-management",
		Title:            "Google Ads Management",
		ShortDescription: "Paid search campaigns managed for profit, not just clicks.",
		FullDescription:  "We run Google Ads accounts the way we'd run our own money: tight keyword match types, relentless negative-keyword pruning, and landing pages that match the ad. Every month you see spend, leads and cost per lead - no hiding behind impressions.",
		Category:         models.CategoryMarketing,
		Timeline:         "Ongoing, 1-month setup",
		FeaturedImage:    "/images/services/google-ads-management.jpg",
		Features: []FeatureData{
			{Title: "Campaign Structure", Description: "Tightly themed ad groups that keep quality scores high.", Icon: "account_tree"},
			{Title: "Conversion Tracking", Description: "Calls, forms and purchases tracked back to the keyword.", Icon: "track_changes"},
			{Title: "Ongoing Optimization", Description: "Weekly bid, budget and search-term reviews.", Icon: "tune"},
		},
		Benefits: []string{
			"Leads this week, not next quarter",
			"Budget shifted to the keywords that convert",
			"No long contracts - we keep the account by earning it",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Account Build", Description: "Keyword research, campaign structure, ad copy and tracking.", Duration: "1-2 weeks"},
			{Title: "Launch & Calibrate", Description: "Controlled launch with daily monitoring for the first fortnight.", Duration: "2 weeks"},
			{Title: "Optimize", Description: "Weekly optimization and monthly performance reviews.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Full account build",
			"Conversion tracking setup",
			"Monthly performance report",
		},
		Technologies: []string{"Google Ads", "Google Tag Manager", "CallRail"},
		PricingTiers: []PricingTierData{
			{
				Name:        "Managed",
				Price:       "$600/month + ad spend",
				Description: "Hands-on management for budgets up to $5k/month.",
				Popular:     true,
				Features:    []string{"Campaign build included", "Weekly optimization", "Call tracking", "Monthly report call"},
			},
			{
				Name:        "Scale",
				Price:       "12% of ad spend",
				Description: "For budgets above $5k/month across multiple campaign types.",
				Features:    []string{"Search, Shopping and Performance Max", "Landing page recommendations", "Dedicated account manager"},
			},
		},
		FAQs: []FAQData{
			{Question: "What budget do we need to start?", Answer: "For most local services, $1,500-3,000/month of ad spend is enough to gather real data and generate leads from week one."},
		},
	},
	{
		Slug:             "local-seo",
		Title:            "Local SEO",
		ShortDescription: "Own the map pack for 'near me' searches in your service area.",
		FullDescription:  "When someone nearby searches for what you do, you should be one of the three businesses on the map. We optimize your Google Business Profile, build consistent citations and earn the reviews that decide local rankings.",
		Category:         models.CategoryMarketing,
		Timeline:         "Ongoing, 3-month minimum",
		FeaturedImage:    "/images/services/local-seo.jpg",
		Features: []FeatureData{
			{Title: "Google Business Profile", Description: "Fully optimized profile with weekly posts and Q&A management.", Icon: "storefront"},
			{Title: "Citation Building", Description: "Consistent name, address and phone across every directory that matters.", Icon: "list_alt"},
			{Title: "Review Velocity", Description: "A steady flow of genuine reviews from happy customers.", Icon: "star"},
		},
		Benefits: []string{
			"Show up in the map pack where the calls come from",
			"Beat bigger competitors inside your service area",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Local Audit", Description: "Profile, citation and competitor gap analysis.", Duration: "1 week"},
			{Title: "Cleanup & Build", Description: "Citation cleanup, profile optimization, review system setup.", Duration: "3-4 weeks"},
			{Title: "Maintain & Grow", Description: "Weekly posting, review responses, monthly local rank tracking.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Optimized Google Business Profile",
			"Citation audit and cleanup",
			"Local rank tracking dashboard",
		},
		Technologies: []string{"BrightLocal", "Google Business Profile"},
		FAQs: []FAQData{
			{Question: "We serve customers at their homes - does local SEO still apply?", Answer: "Yes. Service-area businesses rank in the map pack too; the setup differs slightly but the playbook is just as effective."},
		},
	},
	{
		Slug:             "content-marketing",
		Title:            "Content Marketing",
		ShortDescription: "Articles and guides that answer buyer questions and earn rankings.",
		FullDescription:  "Content marketing is not publishing blog posts and hoping. Every piece we produce targets a question your buyers ask, is written by someone who understands your industry, and gets a promotion plan - not just a publish button.",
		Category:         models.CategoryMarketing,
		Timeline:         "Ongoing, monthly retainer",
		FeaturedImage:    "/images/services/content-marketing.jpg",
		Features: []FeatureData{
			{Title: "Editorial Calendar", Description: "A quarter of topics mapped to the buying journey.", Icon: "calendar_month"},
			{Title: "Expert-Level Writing", Description: "Interviews with your team turned into authoritative content.", Icon: "draw"},
			{Title: "Distribution", Description: "Every piece promoted through email and social, not just published.", Icon: "share"},
		},
		Benefits: []string{
			"Become the business customers find while researching",
			"Content that keeps producing leads for years",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Strategy", Description: "Topic research and a 90-day editorial calendar.", Duration: "2 weeks"},
			{Title: "Produce", Description: "Writing, review and publication on a fixed cadence.", Duration: "ongoing"},
			{Title: "Promote & Measure", Description: "Distribution and quarterly content performance reviews.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Editorial calendar",
			"4-8 published pieces per month",
			"Quarterly performance review",
		},
		Technologies: []string{"Ahrefs", "Mailchimp", "Buffer"},
		FAQs: []FAQData{
			{Question: "Who writes the content?", Answer: "Our writers, with input from your subject-matter experts. A 30-minute interview typically fuels two or three strong pieces."},
		},
	},
	{
		Slug:             "email-marketing-automation",
		Title:            "Email Marketing Automation",
		ShortDescription: "Automated email flows that nurture leads while you sleep.",
		FullDescription:  "Most businesses sit on a list of past customers and old enquiries worth thousands in repeat revenue. We build the welcome sequences, nurture flows and win-back campaigns that turn that list into bookings - automatically.",
		Category:         models.CategoryMarketing,
		Timeline:         "2-4 weeks setup, then ongoing",
		FeaturedImage:    "/images/services/email-marketing-automation.jpg",
		Features: []FeatureData{
			{Title: "Automated Sequences", Description: "Welcome, nurture, abandoned-cart and win-back flows.", Icon: "schedule_send"},
			{Title: "List Segmentation", Description: "The right message to the right slice of your list.", Icon: "segment"},
			{Title: "Deliverability Setup", Description: "SPF, DKIM and DMARC configured so email lands in the inbox.", Icon: "mark_email_read"},
		},
		Benefits: []string{
			"Revenue from the list you already own",
			"Every new lead followed up instantly, every time",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Audit & Plan", Description: "List health check, platform setup, flow mapping.", Duration: "1 week"},
			{Title: "Build Flows", Description: "Copy, design and automation logic for each sequence.", Duration: "1-2 weeks"},
			{Title: "Optimize", Description: "Monthly campaign sends plus flow performance tuning.", Duration: "ongoing"},
		},
		Deliverables: []string{
			"Automated email flows",
			"Template designs",
			"Deliverability configuration",
		},
		Technologies: []string{"Klaviyo", "Mailchimp", "Zapier"},
		Testimonial: &TestimonialData{
			Quote:     "The win-back sequence alone paid for a year of the service in its first month.",
			Author:    "Laura Chen",
			Company:   "Chen Physiotherapy",
			AvatarURL: "/images/testimonials/laura-chen.jpg",
		},
		FAQs: []FAQData{
			{Question: "We only have a few hundred contacts - is it worth it?", Answer: "Usually yes. Small lists of past customers convert far better than cold audiences, and the automation keeps working as the list grows."},
		},
	},
}
