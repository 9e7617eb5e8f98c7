package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArowuTest/oripay-exchange-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure DocumentStore implements the interface
var _ repositories.DocumentStore = (*DocumentStore)(nil)

// DocumentStore stores each collection as a MongoDB collection with string _id values
type DocumentStore struct {
	db  *mongo.Database
	now func() time.Time
}

// NewDocumentStore creates a new DocumentStore
func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Get finds a document by id
func (s *DocumentStore) Get(ctx context.Context, collection, id string) (*repositories.Document, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrDocumentNotFound
		}
		return nil, err
	}
	delete(raw, "_id")
	return &repositories.Document{ID: id, Fields: repositories.Fields(raw)}, nil
}

// List returns all documents of a collection sorted by _id
func (s *DocumentStore) List(ctx context.Context, collection string) ([]*repositories.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		return nil, err
	}

	docs := make([]*repositories.Document, 0, len(raws))
	for _, raw := range raws {
		id := documentID(raw["_id"])
		delete(raw, "_id")
		docs = append(docs, &repositories.Document{ID: id, Fields: repositories.Fields(raw)})
	}
	return docs, nil
}

// Set replaces the document, or merges into it with flattened $set paths
func (s *DocumentStore) Set(ctx context.Context, collection, id string, fields repositories.Fields, merge bool) error {
	resolved := repositories.ResolveFields(fields, s.now())
	filter := bson.M{"_id": id}

	if !merge {
		doc := bson.M(resolved)
		doc["_id"] = id
		_, err := s.db.Collection(collection).ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
		return err
	}

	set := bson.M(repositories.FlattenFields(resolved))
	if len(set) == 0 {
		set = bson.M{"_id": id}
	}
	_, err := s.db.Collection(collection).UpdateOne(ctx, filter, bson.M{"$set": set}, options.Update().SetUpsert(true))
	return err
}

// Create upserts with $setOnInsert so an existing document is left untouched
func (s *DocumentStore) Create(ctx context.Context, collection, id string, fields repositories.Fields) (bool, error) {
	resolved := bson.M(repositories.ResolveFields(fields, s.now()))
	delete(resolved, "_id")
	update := bson.M{"$setOnInsert": resolved}
	if len(resolved) == 0 {
		update = bson.M{"$setOnInsert": bson.M{"_id": id}}
	}
	result, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return result.UpsertedCount == 1, nil
}

// Update sets top-level fields on an existing document
func (s *DocumentStore) Update(ctx context.Context, collection, id string, fields repositories.Fields) error {
	resolved := repositories.ResolveFields(fields, s.now())
	result, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(resolved)})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrDocumentNotFound
	}
	return nil
}

// Delete removes a document by id
func (s *DocumentStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Add inserts a document under a new ObjectID hex id
func (s *DocumentStore) Add(ctx context.Context, collection string, fields repositories.Fields) (string, error) {
	id := primitive.NewObjectID().Hex()
	if err := s.Set(ctx, collection, id, fields, false); err != nil {
		return "", err
	}
	return id, nil
}

func documentID(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case primitive.ObjectID:
		return t.Hex()
	default:
		return fmt.Sprint(t)
	}
}
