package knowledge

// Pattern is one reference design pattern in the corpus.
type Pattern struct {
	ID             string
	Name           string
	Description    string
	Category       string
	WhenToUse      string
	Benefits       []string
	Considerations []string
}

var designPatterns = []Pattern{
	{
		ID:   "circuit_breaker",
		Name: "Circuit Breaker",
		Description: "Wraps calls to a remote dependency and trips open after a failure threshold, " +
			"failing fast instead of queueing doomed requests. Half-open probes restore traffic once " +
			"the dependency recovers.",
		Category:  "resilience",
		WhenToUse: "Any synchronous call to a dependency that can become slow or unavailable.",
		Benefits: []string{
			"Prevents cascading failures", "Bounds latency during outages",
			"Gives dependencies room to recover",
		},
		Considerations: []string{
			"Thresholds need tuning per dependency", "Needs a fallback path to be useful",
		},
	},
	{
		ID:   "idempotent_retry",
		Name: "Idempotent Retry",
		Description: "Every externally visible operation carries a client-generated idempotency key; " +
			"the server deduplicates on the key so retries after timeouts are safe. Essential for " +
			"payment and ordering flows where at-least-once delivery meets money.",
		Category:  "reliability",
		WhenToUse: "Mutations that may be retried by clients or message consumers.",
		Benefits: []string{
			"Safe retries over unreliable networks", "Exactly-once effects from at-least-once delivery",
		},
		Considerations: []string{
			"Key storage needs a TTL policy", "All side effects must be covered, not just the primary write",
		},
	},
	{
		ID:   "cqrs",
		Name: "CQRS",
		Description: "Separates the write model (commands, validated against invariants) from read " +
			"models (denormalized projections built from the event stream). Each side scales and " +
			"evolves independently.",
		Category:  "data",
		WhenToUse: "Read and write workloads with very different shapes or scale requirements.",
		Benefits: []string{
			"Independent scaling of reads and writes", "Purpose-built read views",
		},
		Considerations: []string{
			"Eventual consistency between sides", "More moving parts than CRUD",
		},
	},
	{
		ID:   "saga",
		Name: "Saga Pattern",
		Description: "Coordinates a multi-service transaction as a sequence of local transactions, " +
			"each with a compensating action. Orchestrated sagas use a central coordinator; " +
			"choreographed sagas react to each other's events.",
		Category:  "data",
		WhenToUse: "Business transactions spanning services where two-phase commit is impractical.",
		Benefits: []string{
			"No distributed locks", "Clear failure-recovery story per step",
		},
		Considerations: []string{
			"Compensations must be designed up front", "Intermediate states are externally visible",
		},
	},
	{
		ID:   "bulkhead",
		Name: "Bulkhead",
		Description: "Partitions resources (connection pools, worker pools, instances) per consumer " +
			"or per dependency so one overloaded path cannot exhaust capacity needed by others.",
		Category:  "resilience",
		WhenToUse: "Shared services with heterogeneous callers or dependencies of varying reliability.",
		Benefits: []string{
			"Contains blast radius of overload", "Predictable capacity per tenant",
		},
		Considerations: []string{
			"Static partitions can waste capacity", "Sizing requires load data",
		},
	},
}
