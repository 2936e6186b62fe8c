/*
Package monitoring provides Prometheus-based metrics collection.

Tracked metrics cover HTTP requests (latency, throughput, size), tool calls
(duration, status, error kinds), and server uptime. A JSON snapshot of the
headline counters backs the stats endpoint.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	timer := monitoring.NewTimer(metrics, "filesystem", "read_file")
	// ... perform call ...
	timer.Stop("success")

Expose the full exposition format via the standard handler:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
