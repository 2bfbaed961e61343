// Package mongo connects to MongoDB with the official v2 driver for the
// mongo note store.
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	db, err := mongo.Database(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := notestore.NewMongo(db.Collection("notes"))
package mongo
