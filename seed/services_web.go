package seed

import "agencypro-backend/models"

func NewWebServicesSeeder() *CategorySeeder {
	return &CategorySeeder{
		cfg: Config{
			Name:        "web-services",
			Description: "Website design and development services",
		},
		records: webServiceRecords,
	}
}

var webServiceRecords = []ServiceRecord{
	{
		Slug:             "custom-website-development",
		Title:            "Custom Website Development",
		ShortDescription: "Hand-built, fast-loading websites tailored to your business goals.",
		FullDescription:  "We design and build custom websites from the ground up - no page builders, no bloated themes. Every site ships with responsive layouts, accessibility baked in, and page speed scores your competitors will envy. Built on a modern stack and handed over with full documentation.",
		Category:         models.CategoryDevelopment,
		Timeline:         "4-8 weeks",
		FeaturedImage:    "/images/services/custom-website-development.jpg",
		Features: []FeatureData{
			{Title: "Responsive Design", Description: "Pixel-perfect on every screen size, from phones to ultrawide monitors.", Icon: "devices"},
			{Title: "Performance First", Description: "Core Web Vitals in the green, sub-second first paint on 4G.", Icon: "speed"},
			{Title: "CMS Integration", Description: "Edit every page yourself through a clean content dashboard.", Icon: "edit"},
			{Title: "SEO Foundations", Description: "Semantic markup, structured data and clean URLs from day one.", Icon: "search"},
			{Title: "Analytics Setup", Description: "Know exactly which pages turn visitors into enquiries.", Icon: "insights"},
		},
		Benefits: []string{
			"A website you own outright - no licence fees, no lock-in",
			"Faster pages that rank better and convert more",
			"Easy content updates without calling a developer",
			"Built to grow with your business",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Discovery", Description: "We map your goals, audience and competitors before a single pixel is drawn.", Duration: "1 week"},
			{Title: "Design", Description: "Wireframes first, then high-fidelity mockups for every key template.", Duration: "1-2 weeks"},
			{Title: "Build", Description: "Development in weekly sprints with a staging link you can click through.", Duration: "2-4 weeks"},
			{Title: "Launch", Description: "Content migration, redirects, DNS cutover and post-launch monitoring.", Duration: "1 week"},
		},
		Deliverables: []string{
			"Fully responsive custom website",
			"Content management system",
			"On-page SEO setup",
			"Analytics and conversion tracking",
			"Training session and documentation",
		},
		Technologies: []string{"Next.js", "React", "TypeScript", "Tailwind CSS", "PostgreSQL", "Vercel"},
		GalleryImages: []GalleryImageData{
			{URL: "/images/gallery/custom-web-1.jpg", Alt: "Homepage design for a local law firm"},
			{URL: "/images/gallery/custom-web-2.jpg", Alt: "Mobile views of a restaurant website"},
		},
		PricingTiers: []PricingTierData{
			{
				Name:        "Starter",
				Price:       "$3,500",
				Description: "Up to five pages for businesses that need a sharp online presence fast.",
				Features:    []string{"5 custom-designed pages", "Mobile responsive", "Contact form", "Basic SEO setup", "30 days support"},
			},
			{
				Name:        "Business",
				Price:       "$7,500",
				Description: "Our most popular package for established local businesses.",
				Popular:     true,
				Features:    []string{"Up to 15 pages", "CMS for self-service edits", "Blog setup", "Advanced SEO setup", "Speed optimization", "90 days support"},
			},
			{
				Name:        "Custom",
				Price:       "$12,000+",
				Description: "Complex builds: members areas, booking systems, integrations.",
				Features:    []string{"Unlimited pages", "Custom functionality", "Third-party integrations", "Priority support", "Dedicated project manager"},
			},
		},
		Testimonial: &TestimonialData{
			Quote:     "They rebuilt our site in six weeks and enquiries doubled within two months. Worth every penny.",
			Author:    "Sarah Mitchell",
			Company:   "Mitchell & Co Accountants",
			AvatarURL: "/images/testimonials/sarah-mitchell.jpg",
		},
		FAQs: []FAQData{
			{Question: "How long does a custom website take?", Answer: "Most projects launch in 4-8 weeks depending on scope. We agree a timeline during discovery and stick to it."},
			{Question: "Will I be able to edit the site myself?", Answer: "Yes. Every build includes a CMS and a training session so your team can update content without us."},
			{Question: "Do you work with businesses outside the area?", Answer: "Absolutely - about half our clients are remote. Everything from kickoff to launch works over video calls."},
		},
	},
	{
		Slug:             "ecommerce-development",
		Title:            "E-Commerce Development",
		ShortDescription: "Online stores that are fast at checkout and easy to run.",
		FullDescription:  "From a first Shopify store to a custom headless storefront, we build e-commerce sites around one metric: completed checkouts. Catalog setup, payment gateways, shipping rules, abandoned-cart flows - handled end to end.",
		Category:         models.CategoryDevelopment,
		Timeline:         "6-10 weeks",
		FeaturedImage:    "/images/services/ecommerce-development.jpg",
		Features: []FeatureData{
			{Title: "Conversion-Optimized Checkout", Description: "Fewer steps, saved carts, express payment options.", Icon: "shopping_cart"},
			{Title: "Inventory Management", Description: "Stock levels synced across your store and back office.", Icon: "inventory"},
			{Title: "Payment Integration", Description: "Stripe, PayPal, Apple Pay and buy-now-pay-later options.", Icon: "payments"},
			{Title: "Shipping Automation", Description: "Live rates, label printing and tracking notifications.", Icon: "local_shipping"},
		},
		Benefits: []string{
			"Sell 24/7 without adding headcount",
			"Lower cart abandonment with a streamlined checkout",
			"One dashboard for orders, stock and customers",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Store Planning", Description: "Catalog structure, payment and shipping requirements, platform choice.", Duration: "1 week"},
			{Title: "Design & Build", Description: "Storefront design, product templates and checkout flow.", Duration: "3-6 weeks"},
			{Title: "Catalog & Testing", Description: "Product import, test orders across devices and payment methods.", Duration: "1-2 weeks"},
			{Title: "Launch & Handover", Description: "Go live with order-management training for your team.", Duration: "1 week"},
		},
		Deliverables: []string{
			"Complete online store",
			"Product catalog setup",
			"Payment and shipping configuration",
			"Order notification emails",
			"Staff training",
		},
		Technologies: []string{"Shopify", "Next.js", "Stripe", "Klaviyo"},
		PricingTiers: []PricingTierData{
			{
				Name:        "Launch",
				Price:       "$5,000",
				Description: "A polished store on Shopify with up to 50 products.",
				Features:    []string{"Theme customization", "50 products imported", "Payment setup", "Shipping rules", "30 days support"},
			},
			{
				Name:        "Growth",
				Price:       "$10,000 - $18,000",
				Description: "Custom storefront design with advanced automation.",
				Popular:     true,
				Features:    []string{"Custom design", "Unlimited products", "Abandoned-cart flows", "Reviews and upsells", "90 days support"},
			},
		},
		Testimonial: &TestimonialData{
			Quote:     "Our old store crashed every Black Friday. The new one took four times the traffic without a hiccup.",
			Author:    "Dan Okafor",
			Company:   "Trailhead Outfitters",
			AvatarURL: "/images/testimonials/dan-okafor.jpg",
		},
		FAQs: []FAQData{
			{Question: "Shopify or custom - which should we pick?", Answer: "Shopify covers most stores brilliantly. We recommend custom builds only when you have requirements Shopify genuinely can't meet."},
			{Question: "Can you migrate our existing products and orders?", Answer: "Yes, including customers, order history and SEO redirects from your old URLs."},
		},
	},
	{
		Slug:             "landing-page-design",
		Title:            "Landing Page Design",
		ShortDescription: "Single-purpose pages built to turn ad clicks into leads.",
		FullDescription:  "A focused landing page can double the return on your ad spend. We write, design and build pages with one job: get the visitor to act. Includes A/B-test-ready variants and conversion tracking wired to your analytics.",
		Category:         models.CategoryDevelopment,
		Timeline:         "1-2 weeks",
		FeaturedImage:    "/images/services/landing-page-design.jpg",
		Features: []FeatureData{
			{Title: "Persuasive Copywriting", Description: "Headlines and copy written for your audience, not template filler.", Icon: "edit_note"},
			{Title: "A/B Test Variants", Description: "Launch with two versions and keep the winner.", Icon: "science"},
			{Title: "Fast Load Times", Description: "Stripped-down pages that load instantly from any ad click.", Icon: "bolt"},
		},
		Benefits: []string{
			"Higher conversion rates from the same traffic",
			"Lower cost per lead on paid campaigns",
			"Live in days, not months",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Offer & Audience", Description: "Nail down the offer, the audience and the single action we want.", Duration: "2 days"},
			{Title: "Copy & Design", Description: "Page copy and design presented together for one round of feedback.", Duration: "3-5 days"},
			{Title: "Build & Track", Description: "Responsive build with conversion tracking and form delivery tested.", Duration: "2-3 days"},
		},
		Deliverables: []string{
			"Custom landing page",
			"A/B test variant",
			"Conversion tracking setup",
			"Form and notification wiring",
		},
		Technologies: []string{"Next.js", "Tailwind CSS", "Google Tag Manager"},
		PricingTiers: []PricingTierData{
			{
				Name:        "Single Page",
				Price:       "$1,500",
				Description: "One high-converting page with tracking.",
				Features:    []string{"Copywriting included", "Mobile responsive", "Conversion tracking", "1 revision round"},
			},
			{
				Name:        "Campaign Pack",
				Price:       "$3,500",
				Description: "Three pages for campaigns targeting different audiences.",
				Popular:     true,
				Features:    []string{"3 landing pages", "A/B variants for each", "Shared component library", "2 revision rounds"},
			},
		},
		FAQs: []FAQData{
			{Question: "Do you write the copy or do we supply it?", Answer: "We write it. You know your business; we know what makes visitors click. You get full approval before anything goes live."},
		},
	},
	{
		Slug:             "website-redesign",
		Title:            "Website Redesign",
		ShortDescription: "Modernize an outdated site without losing the rankings it has earned.",
		FullDescription:  "A redesign done badly can wipe out years of SEO. We rebuild dated websites with a migration plan that preserves rankings, redirects every old URL, and measurably improves speed and conversions.",
		Category:         models.CategoryDevelopment,
		Timeline:         "4-6 weeks",
		FeaturedImage:    "/images/services/website-redesign.jpg",
		Features: []FeatureData{
			{Title: "SEO-Safe Migration", Description: "Full URL mapping and redirects so rankings survive the switch.", Icon: "sync_alt"},
			{Title: "Content Audit", Description: "Keep what performs, rewrite what doesn't, cut the dead weight.", Icon: "fact_check"},
			{Title: "Modern Design System", Description: "A refreshed look with reusable components for future pages.", Icon: "palette"},
		},
		Benefits: []string{
			"A site you're proud to put on a business card",
			"Rankings and traffic preserved through launch",
			"Faster pages on modern infrastructure",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Audit", Description: "Traffic, rankings and content inventory of the existing site.", Duration: "1 week"},
			{Title: "Redesign", Description: "New design applied across all templates.", Duration: "1-2 weeks"},
			{Title: "Rebuild & Migrate", Description: "Development, content migration and a complete redirect map.", Duration: "2-3 weeks"},
		},
		Deliverables: []string{
			"Redesigned website",
			"301 redirect map",
			"Content migration",
			"Before/after performance report",
		},
		Technologies: []string{"Next.js", "React", "Tailwind CSS"},
		Testimonial: &TestimonialData{
			Quote:     "We were terrified of losing our Google rankings. Traffic actually went up the month after launch.",
			Author:    "Priya Raman",
			Company:   "Raman Dental Care",
			AvatarURL: "/images/testimonials/priya-raman.jpg",
		},
		FAQs: []FAQData{
			{Question: "Will we lose traffic during the redesign?", Answer: "No - the old site stays live until the new one is ready, and every URL gets a mapped redirect before cutover."},
			{Question: "Can you keep parts of our current branding?", Answer: "Yes. A redesign doesn't have to mean a rebrand; we work within your existing identity unless you want to change it."},
		},
	},
	{
		Slug:             "progressive-web-apps",
		Title:            "Progressive Web Apps",
		ShortDescription: "App-like experiences in the browser - installable, offline-capable, fast.",
		FullDescription:  "Get the engagement of a native app without app-store gatekeeping or double development costs. We build progressive web apps that install to the home screen, work offline and send push notifications.",
		Category:         models.CategoryDevelopment,
		Timeline:         "6-12 weeks",
		FeaturedImage:    "/images/services/progressive-web-apps.jpg",
		Features: []FeatureData{
			{Title: "Offline Support", Description: "Core features keep working with no connection.", Icon: "wifi_off"},
			{Title: "Push Notifications", Description: "Re-engage users without building a native app.", Icon: "notifications"},
			{Title: "Home-Screen Install", Description: "One tap to install, no app store required.", Icon: "install_mobile"},
		},
		Benefits: []string{
			"One codebase for web, Android and iOS",
			"No app-store review delays or fees",
			"Native-feeling speed on mid-range phones",
		},
		ProcessSteps: []ProcessStepData{
			{Title: "Product Definition", Description: "Feature scope, offline strategy and success metrics.", Duration: "1-2 weeks"},
			{Title: "Design & Prototype", Description: "Clickable prototype validated with real users.", Duration: "2 weeks"},
			{Title: "Build", Description: "Iterative development with fortnightly demos.", Duration: "3-8 weeks"},
		},
		Deliverables: []string{
			"Installable progressive web app",
			"Offline caching strategy",
			"Push notification setup",
			"Deployment pipeline",
		},
		Technologies: []string{"React", "TypeScript", "Workbox", "Firebase"},
		FAQs: []FAQData{
			{Question: "How is a PWA different from a normal website?", Answer: "A PWA installs to the home screen, works offline and can send push notifications - it behaves like an app but ships like a website."},
		},
	},
}
