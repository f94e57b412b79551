// Package app provides uniform application lifecycle management: config
// validation, logger initialization, component startup in registration order,
// signal-driven shutdown, and reverse-order component teardown.
//
//	a, err := app.New(&cfg)
//	a.RegisterComponent(redis.NewComponent(redisCfg, a.Logger))
//	a.RegisterComponent(server.NewComponent(srv))
//	a.Run(context.Background())
package app
