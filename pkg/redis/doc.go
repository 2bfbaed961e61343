// Package redis connects to the Redis server used by the redis note store.
//
// Connect retries the initial ping according to Config. Config is populated
// from the environment by pkg/config.
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := notestore.NewRedis(client)
package redis
