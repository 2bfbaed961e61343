package notestore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type mongoNote struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Mongo keeps one document per key, with the key as _id.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var doc mongoNote
	err := m.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrGetFailed, err)
	}
	return doc.Value, nil
}

func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	_, err := m.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: key}},
		setValue(value),
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrSetFailed, err)
	}
	return nil
}

func (m *Mongo) CompareAndSwap(ctx context.Context, key string, old, next []byte) (bool, error) {
	if len(old) == 0 {
		// Upsert on a filter that misses an existing non-empty document
		// collides on _id, which means the swap lost.
		filter := bson.D{
			{Key: "_id", Value: key},
			{Key: "value", Value: bson.D{{Key: "$in", Value: bson.A{[]byte{}, nil}}}},
		}
		res, err := m.coll.UpdateOne(ctx, filter, setValue(next), options.UpdateOne().SetUpsert(true))
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		if err != nil {
			return false, errors.Join(ErrCASFailed, err)
		}
		return res.MatchedCount+res.UpsertedCount == 1, nil
	}

	filter := bson.D{{Key: "_id", Value: key}, {Key: "value", Value: old}}
	res, err := m.coll.UpdateOne(ctx, filter, setValue(next))
	if err != nil {
		return false, errors.Join(ErrCASFailed, err)
	}
	return res.MatchedCount == 1, nil
}

func (m *Mongo) Healthcheck(ctx context.Context) error {
	if err := m.coll.Database().Client().Ping(ctx, nil); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

func setValue(v []byte) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: "value", Value: nonNil(v)},
		{Key: "updated_at", Value: time.Now().UTC()},
	}}}
}
