package repository

import (
	"context"
	"errors"

	"github.com/doclibhq/doclib-be/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrNotFound = errors.New("document not found")

type DocumentRepo interface {
	Insert(ctx context.Context, doc types.LibraryDocument) (types.LibraryDocument, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]types.LibraryDocument, error)
}

type documentRepo struct {
	collection *mongo.Collection
}

func NewDocumentRepo(collection *mongo.Collection) DocumentRepo {
	return &documentRepo{
		collection: collection,
	}
}

// Insert stores the document and returns it carrying the server-assigned id.
func (r *documentRepo) Insert(ctx context.Context, doc types.LibraryDocument) (types.LibraryDocument, error) {
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return types.LibraryDocument{}, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		doc.ID = oid.Hex()
	} else if id, ok := res.InsertedID.(string); ok {
		doc.ID = id
	}
	return doc, nil
}

func (r *documentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns every document ordered newest-first by upload time.
func (r *documentRepo) List(ctx context.Context) ([]types.LibraryDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []types.LibraryDocument
	for cursor.Next(ctx) {
		var doc types.LibraryDocument
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

// idFilter matches both server-minted object ids and locally generated string
// ids that reached the remote store through a later sync or import.
func idFilter(id string) bson.M {
	if oid, err := bson.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}
	}
	return bson.M{"_id": id}
}
