// Package mongo adapts a MongoDB database to the document-store port. Each
// resource collection maps to one mongo collection; document ids are the hex
// form of the mongo ObjectID.
package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/commercekit/commerce-api/internal/resource/domain"
	"github.com/commercekit/commerce-api/internal/resource/ports"
)

var errUnexpectedID = errors.New("mongo returned a non-ObjectID insert id")

var _ ports.Store = (*Store)(nil)

// Store wraps one mongo database. The caller owns the client lifecycle.
type Store struct {
	db *mongodrv.Database
}

// NewStore wires a mongo-backed document store.
func NewStore(db *mongodrv.Database) *Store {
	return &Store{db: db}
}

// Collection returns a handle bound to the named mongo collection.
func (s *Store) Collection(name string) ports.Collection {
	return &Collection{coll: s.db.Collection(name)}
}

var _ ports.Collection = (*Collection)(nil)

// Collection executes document operations against one mongo collection.
type Collection struct {
	coll *mongodrv.Collection
}

// Add inserts the document and returns the generated ObjectID as hex.
func (c *Collection) Add(ctx context.Context, doc domain.Document) (string, error) {
	res, err := c.coll.InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errUnexpectedID
	}
	return oid.Hex(), nil
}

// Get fetches one document by id.
func (c *Collection) Get(ctx context.Context, id string) (domain.Document, error) {
	var raw bson.M
	if err := c.coll.FindOne(ctx, bson.M{"_id": idValue(id)}).Decode(&raw); err != nil {
		if err == mongodrv.ErrNoDocuments {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return toDocument(raw), nil
}

// List returns every document in cursor order.
func (c *Collection) List(ctx context.Context) ([]domain.Entry, error) {
	cur, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	entries := make([]domain.Entry, 0)
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		entries = append(entries, domain.Entry{ID: idString(raw["_id"]), Data: toDocument(raw)})
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// Merge $sets the supplied fields with upsert enabled, so an absent id
// creates the document.
func (c *Collection) Merge(ctx context.Context, id string, partial domain.Document) error {
	update := bson.M{"$set": bson.M(partial)}
	if len(partial) == 0 {
		// $set rejects an empty document; an empty merge still upserts.
		update = bson.M{"$setOnInsert": bson.M{"_id": idValue(id)}}
	}
	_, err := c.coll.UpdateByID(ctx, idValue(id), update, options.Update().SetUpsert(true))
	return err
}

// Delete issues an unconditional DeleteOne; a zero match count is success.
func (c *Collection) Delete(ctx context.Context, id string) error {
	_, err := c.coll.DeleteOne(ctx, bson.M{"_id": idValue(id)})
	return err
}

// idValue maps a document id to its mongo _id form: ids the adapter minted
// are ObjectID hex, while client-supplied ids from merge-create stay plain
// strings.
func idValue(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func idString(raw any) string {
	switch v := raw.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

func toDocument(raw bson.M) domain.Document {
	doc := make(domain.Document, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	return doc
}
