// Package observability provides OpenTelemetry tracing for pulse.
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultConfig("pulse"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "probe.status")
//	defer span.End()
package observability
