package knowledge

// TechStack is one reference technology stack in the corpus.
type TechStack struct {
	ID          string
	Name        string
	Description string
	BestFor     []string
	Components  map[string]string
}

var techStacks = []TechStack{
	{
		ID:   "go_postgres",
		Name: "Go + PostgreSQL Service Stack",
		Description: "Boring-by-design stack for high-throughput APIs: Go services, PostgreSQL as " +
			"the system of record, Redis for caching and rate limits, Kafka when async work appears. " +
			"Single binary deployments keep the operational surface small.",
		BestFor: []string{"API backends", "Payments", "Infrastructure tooling"},
		Components: map[string]string{
			"language":  "Go",
			"database":  "PostgreSQL",
			"cache":     "Redis",
			"messaging": "Kafka",
			"deploy":    "Kubernetes",
		},
	},
	{
		ID:   "typescript_serverless",
		Name: "TypeScript Serverless Stack",
		Description: "Full-stack TypeScript on managed infrastructure: Next.js frontends, " +
			"serverless functions for APIs, a managed Postgres (or DynamoDB for key-value shapes), " +
			"and queues for background work. Optimized for small teams shipping quickly.",
		BestFor: []string{"Startups", "Content sites", "Internal tools"},
		Components: map[string]string{
			"language": "TypeScript",
			"frontend": "Next.js",
			"compute":  "Serverless functions",
			"database": "Managed PostgreSQL",
			"queue":    "SQS",
		},
	},
	{
		ID:   "jvm_event_streaming",
		Name: "JVM Event Streaming Stack",
		Description: "Kafka-centric architecture for data-intensive platforms: JVM services " +
			"(Kotlin/Java) producing and consuming event streams, stream processing with Flink or " +
			"Kafka Streams, and a lakehouse for analytics. Built for organizations where the event " +
			"log is the source of truth.",
		BestFor: []string{"Event-driven platforms", "Analytics pipelines", "Fintech"},
		Components: map[string]string{
			"language":   "Kotlin/Java",
			"streaming":  "Kafka",
			"processing": "Flink",
			"analytics":  "Lakehouse (Iceberg)",
			"deploy":     "Kubernetes",
		},
	},
}
