package agent

// Curated UI reference tables. These seed the UI research prompt with concrete
// platforms, industry color psychology, and font pairings so the model grounds
// its recommendations instead of inventing generic advice.

type uiInspiration struct {
	Name        string
	Keywords    []string
	Description string
	Platforms   []string
}

var uiInspirations = []uiInspiration{
	{
		Name:     "E-commerce Platforms",
		Keywords: []string{"shop", "store", "ecommerce", "e-commerce", "marketplace", "retail", "product"},
		Description: "Shopify themes: clean conversion-focused layouts, hero sections with strong CTAs, " +
			"product grids with hover states, trust badges. Apple Store: premium minimalist aesthetic, " +
			"large product imagery, generous whitespace. Nike: bold full-bleed imagery, strong typography, " +
			"interactive product customization. Key patterns: sticky add-to-cart, quick view modals, " +
			"mega navigation, filter sidebars, wishlists.",
		Platforms: []string{"Shopify", "Apple", "Nike", "Glossier", "Allbirds"},
	},
	{
		Name:     "SaaS Dashboard",
		Keywords: []string{"dashboard", "saas", "admin", "analytics", "panel", "management"},
		Description: "Linear: modern keyboard-first design, dark mode default, minimal chrome, command " +
			"palette. Stripe Dashboard: information-dense yet clean, clear data hierarchy, excellent " +
			"empty states. Notion: flexible block-based UI, inline editing. Key patterns: sidebar " +
			"navigation, sortable data tables, charts, settings pages, onboarding flows.",
		Platforms: []string{"Linear", "Stripe", "Notion", "Figma", "Vercel"},
	},
	{
		Name:     "Social Media Platforms",
		Keywords: []string{"social", "feed", "posts", "community", "network", "profile"},
		Description: "Twitter/X: fast scannable feeds, infinite scroll, threaded conversations. " +
			"Instagram: visual-first grid layouts, stories format, explore discovery. Discord: " +
			"community-focused channel organization, real-time presence. Key patterns: like/react " +
			"interactions, share mechanics, direct messaging, profiles, notification badges.",
		Platforms: []string{"Twitter", "Instagram", "Discord", "Reddit", "TikTok"},
	},
	{
		Name:     "Fintech Applications",
		Keywords: []string{"finance", "banking", "payment", "money", "investment", "wallet", "crypto"},
		Description: "Stripe: developer-friendly and trustworthy, clear pricing, step-by-step flows. " +
			"Robinhood: simplified investing, clean data visualization, green/red coding. Wise: fee " +
			"transparency, progress tracking, multi-currency display. Key patterns: account summaries, " +
			"transaction history, security indicators, two-factor flows, budget visualizations.",
		Platforms: []string{"Stripe", "Robinhood", "Wise", "Revolut", "Coinbase"},
	},
	{
		Name:     "Healthcare Applications",
		Keywords: []string{"health", "medical", "doctor", "patient", "wellness", "fitness"},
		Description: "One Medical: modern and approachable, appointment booking, records access. " +
			"Headspace: calming soft illustrations, progress tracking, guided experiences. Apple " +
			"Health: comprehensive yet simple, trend analysis, privacy-focused. Key patterns: " +
			"scheduling, health metrics display, provider search, secure messaging.",
		Platforms: []string{"One Medical", "Headspace", "Calm", "MyFitnessPal", "Apple Health"},
	},
	{
		Name:     "Education Platforms",
		Keywords: []string{"learning", "course", "education", "school", "training", "tutorial"},
		Description: "Coursera: structured learning paths, course cards, progress indicators. Duolingo: " +
			"gamified streaks, XP and levels, bite-sized lessons. Notion: flexible knowledge bases, " +
			"collaborative editing. Key patterns: course catalogs, video players, quiz interfaces, " +
			"progress dashboards, discussion forums.",
		Platforms: []string{"Coursera", "Duolingo", "Udemy", "Skillshare", "Khan Academy"},
	},
}

type industryPalette struct {
	Description   string
	PrimaryColors []string
	AccentColors  []string
	Psychology    string
}

var industryPalettes = map[string]industryPalette{
	"technology": {
		Description:   "Modern, innovative, trustworthy",
		PrimaryColors: []string{"#0066FF", "#6366F1", "#3B82F6"},
		AccentColors:  []string{"#06B6D4", "#10B981", "#8B5CF6"},
		Psychology:    "Blue conveys trust and reliability, common in tech",
	},
	"healthcare": {
		Description:   "Calming, clean, professional",
		PrimaryColors: []string{"#0891B2", "#059669", "#0D9488"},
		AccentColors:  []string{"#6366F1", "#EC4899", "#F59E0B"},
		Psychology:    "Blue and green promote calm and health associations",
	},
	"finance": {
		Description:   "Trustworthy, secure, professional",
		PrimaryColors: []string{"#1E40AF", "#047857", "#1F2937"},
		AccentColors:  []string{"#10B981", "#EF4444", "#F59E0B"},
		Psychology:    "Dark blue and green convey stability and growth",
	},
	"ecommerce": {
		Description:   "Energetic, trustworthy, action-oriented",
		PrimaryColors: []string{"#DC2626", "#EA580C", "#2563EB"},
		AccentColors:  []string{"#10B981", "#F59E0B", "#8B5CF6"},
		Psychology:    "Orange and red drive action, blue builds trust",
	},
	"education": {
		Description:   "Friendly, accessible, encouraging",
		PrimaryColors: []string{"#7C3AED", "#2563EB", "#059669"},
		AccentColors:  []string{"#F59E0B", "#EC4899", "#06B6D4"},
		Psychology:    "Purple represents wisdom, blue focus, green growth",
	},
	"entertainment": {
		Description:   "Exciting, dynamic, engaging",
		PrimaryColors: []string{"#DC2626", "#9333EA", "#EC4899"},
		AccentColors:  []string{"#F59E0B", "#06B6D4", "#10B981"},
		Psychology:    "Vibrant colors create excitement and engagement",
	},
	"luxury": {
		Description:   "Elegant, sophisticated, exclusive",
		PrimaryColors: []string{"#0F172A", "#78716C", "#92400E"},
		AccentColors:  []string{"#D4AF37", "#F5F5F4", "#1F2937"},
		Psychology:    "Black and gold convey luxury and exclusivity",
	},
	"sustainability": {
		Description:   "Natural, eco-friendly, authentic",
		PrimaryColors: []string{"#059669", "#65A30D", "#0D9488"},
		AccentColors:  []string{"#92400E", "#F59E0B", "#0891B2"},
		Psychology:    "Greens and earth tones convey environmental focus",
	},
}

type fontPairing struct {
	Heading     string
	Body        string
	Description string
}

var fontPairings = map[string]fontPairing{
	"modern":    {Heading: "Inter", Body: "Inter", Description: "Clean, neutral, highly readable"},
	"elegant":   {Heading: "Playfair Display", Body: "Source Sans Pro", Description: "Sophisticated serif with clean sans-serif"},
	"tech":      {Heading: "Space Grotesk", Body: "IBM Plex Sans", Description: "Technical feel, great for SaaS"},
	"friendly":  {Heading: "Nunito", Body: "Open Sans", Description: "Rounded, approachable, warm"},
	"bold":      {Heading: "Bebas Neue", Body: "Roboto", Description: "Strong headlines, readable body"},
	"minimal":   {Heading: "DM Sans", Body: "DM Sans", Description: "Geometric, clean, minimal"},
	"editorial": {Heading: "Libre Baskerville", Body: "Lora", Description: "Classic editorial feel, great for content"},
	"startup":   {Heading: "Satoshi", Body: "General Sans", Description: "Modern startup aesthetic"},
}
