// Package knowledge populates and queries the static knowledge corpus.
package knowledge

// Architecture is one reference system architecture in the corpus.
type Architecture struct {
	ID           string
	Name         string
	Description  string
	Scale        string // small, medium, large, enterprise
	Components   []string
	Technologies map[string][]string
	Patterns     []string
	UseCases     []string
}

var systemArchitectures = []Architecture{
	{
		ID:   "ecommerce_marketplace",
		Name: "E-commerce Marketplace Platform",
		Description: "Service-oriented architecture in the style of large marketplace platforms: " +
			"hundreds of small services behind an API gateway, each owned end-to-end by one team. " +
			"Catalog, cart, checkout, and inventory are independent services communicating through " +
			"events; payment runs in an isolated, compliance-scoped boundary with idempotent retries " +
			"on every external call. Caching sits at every layer, and reads are served from " +
			"denormalized views kept fresh by change streams.",
		Scale: "enterprise",
		Components: []string{
			"CDN", "Load Balancer", "API Gateway", "Microservices",
			"Message Queue", "Cache", "Search Engine", "Data Warehouse",
		},
		Technologies: map[string][]string{
			"frontend":       {"React", "Next.js"},
			"backend":        {"Go", "Java", "Node.js"},
			"database":       {"DynamoDB", "PostgreSQL", "Redis", "Elasticsearch"},
			"infrastructure": {"Kubernetes", "Docker"},
			"messaging":      {"Kafka", "SQS", "SNS"},
		},
		Patterns: []string{
			"Microservices", "Event Sourcing", "CQRS", "Saga Pattern",
			"Circuit Breaker", "Bulkhead",
		},
		UseCases: []string{"E-commerce", "Marketplace", "Retail platform"},
	},
	{
		ID:   "video_streaming",
		Name: "Video Streaming Platform",
		Description: "Upload-transcode-deliver pipeline for user video at global scale. Chunked " +
			"uploads land in object storage, a transcoding fleet produces adaptive-bitrate " +
			"renditions, and a multi-tier CDN with edge caching serves playback. Metadata lives in " +
			"a horizontally sharded store; view counters and watch history are handled by " +
			"append-optimized counter services so hot videos never contend on a single row.",
		Scale: "enterprise",
		Components: []string{
			"Upload Service", "Transcoding Pipeline", "CDN", "Metadata Service",
			"Recommendation Engine", "Counter Service",
		},
		Technologies: map[string][]string{
			"backend":        {"Go", "C++", "Python"},
			"database":       {"Vitess", "Bigtable", "Redis"},
			"infrastructure": {"Kubernetes", "FFmpeg clusters"},
			"delivery":       {"HLS", "DASH", "Edge PoPs"},
		},
		Patterns: []string{
			"Pipeline", "Fan-out", "Cell-based Architecture", "Backpressure",
		},
		UseCases: []string{"Video platform", "Live streaming", "Media delivery"},
	},
	{
		ID:   "ride_sharing",
		Name: "Ride Sharing Dispatch System",
		Description: "Real-time geo-matching between supply (drivers) and demand (riders). " +
			"Location updates stream into a geo-sharded index; a matching service runs constrained " +
			"optimization over nearby candidates with sub-second budgets. Pricing and ETA services " +
			"consume the same location stream. State machines track every trip, and all money " +
			"movement goes through an idempotent ledger service.",
		Scale: "large",
		Components: []string{
			"Location Ingestion", "Geo Index", "Matching Service", "Pricing Service",
			"Trip State Machine", "Ledger",
		},
		Technologies: map[string][]string{
			"backend":   {"Go", "Java"},
			"database":  {"Cassandra", "PostgreSQL", "Redis"},
			"messaging": {"Kafka"},
			"geo":       {"H3", "S2 cells"},
		},
		Patterns: []string{
			"Event Streaming", "Geo Sharding", "State Machine", "Idempotent Consumer",
		},
		UseCases: []string{"Ride sharing", "Food delivery", "On-demand logistics"},
	},
	{
		ID:   "social_feed",
		Name: "Social Feed and Graph Platform",
		Description: "Follower-graph storage with hybrid fan-out: posts from ordinary accounts are " +
			"pushed to follower timelines at write time, while celebrity accounts are pulled and " +
			"merged at read time to avoid million-row write storms. Timelines are cached lists with " +
			"a persistent backing store; the graph itself lives in an adjacency service tuned for " +
			"two-hop queries.",
		Scale: "enterprise",
		Components: []string{
			"Graph Service", "Timeline Service", "Fan-out Workers", "Media Store",
			"Notification Service",
		},
		Technologies: map[string][]string{
			"backend":   {"Go", "Rust"},
			"database":  {"MySQL (sharded)", "Redis", "RocksDB"},
			"messaging": {"Kafka"},
		},
		Patterns: []string{
			"Fan-out on Write", "Fan-out on Read", "Write-through Cache", "Sharding",
		},
		UseCases: []string{"Social network", "Activity feed", "Messaging"},
	},
}
