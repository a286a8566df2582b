package database

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/codec"
)

// MongoResource keeps a whole collection's JSON in a single document that a
// flush replaces, which matches the rewrite-everything contract the file
// backend implements. The document id is the resource name.
type MongoResource struct {
	mu   sync.Mutex
	name string
	coll *mongo.Collection
}

// OpenMongo connects and returns Mongo-backed resources in the "datafiles"
// collection of the given database.
func OpenMongo(uri, dbName string) (*Resources, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	coll := client.Database(dbName).Collection("datafiles")
	return &Resources{
		Products: &MongoResource{name: productsFile, coll: coll},
		Users:    &MongoResource{name: usersFile, coll: coll},
		Carts:    &MongoResource{name: cartsFile, coll: coll},
		Orders:   &MongoResource{name: ordersFile, coll: coll},
	}, nil
}

func (r *MongoResource) Name() string { return r.name }

func (r *MongoResource) Load() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var doc struct {
		Data string `bson:"data"`
	}
	err := r.coll.FindOne(ctx, bson.M{"_id": r.name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		_, err = r.coll.InsertOne(ctx, bson.M{"_id": r.name, "data": string(codec.EmptyCollection)})
		if err != nil {
			return nil, err
		}
		return codec.EmptyCollection, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Data == "" {
		return codec.EmptyCollection, nil
	}
	return []byte(doc.Data), nil
}

func (r *MongoResource) Flush(data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": r.name},
		bson.M{"_id": r.name, "data": string(data)}, opts)
	return err
}
