/*
Package observability turns the engine's lifecycle hooks into Prometheus metrics.

	metrics, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	engine, err := jornada.New(jornada.WithLifecycleHooks(metrics.Hooks()))

Hooks can be combined with other observers through domain.LifecycleHooks.Merge.
*/
package observability
