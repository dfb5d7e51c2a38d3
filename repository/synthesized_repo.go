package repository

import (
	"context"

	"github.com/doclibhq/doclib-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type SynthesizedRepo interface {
	Insert(ctx context.Context, doc types.SynthesizedDocument) (types.SynthesizedDocument, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]types.SynthesizedDocument, error)
}

type synthesizedRepo struct {
	collection *mongo.Collection
}

func NewSynthesizedRepo(collection *mongo.Collection) SynthesizedRepo {
	return &synthesizedRepo{
		collection: collection,
	}
}

func (r *synthesizedRepo) Insert(ctx context.Context, doc types.SynthesizedDocument) (types.SynthesizedDocument, error) {
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return types.SynthesizedDocument{}, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		doc.ID = oid.Hex()
	} else if id, ok := res.InsertedID.(string); ok {
		doc.ID = id
	}
	return doc, nil
}

func (r *synthesizedRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *synthesizedRepo) List(ctx context.Context) ([]types.SynthesizedDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []types.SynthesizedDocument
	for cursor.Next(ctx) {
		var doc types.SynthesizedDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}
