package metrics

// Config carries the metric labels shared by every collector.
type Config struct {
	ServiceName string
	Environment string
}
