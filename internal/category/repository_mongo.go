package category

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepository reads category documents from the `categorys` collection.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("categorys")}
}

type mongoCategory struct {
	ID       int     `bson:"id"`
	Category string  `bson:"category"`
	EN       *string `bson:"CategoryEN"`
	FR       *string `bson:"CategoryFR"`
	JP       *string `bson:"CategoryJP"`
	ZH       *string `bson:"CategoryZH"`
}

func (d mongoCategory) record() Record {
	return Record{ID: d.ID, Category: d.Category, EN: d.EN, FR: d.FR, JP: d.JP, ZH: d.ZH}
}

func (r *MongoRepository) FindByID(ctx context.Context, id int) (Record, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoRepository) FindByLabel(ctx context.Context, label string) (Record, error) {
	rec, err := r.findOne(ctx, bson.M{"category": label})
	if !errors.Is(err, ErrNotFound) {
		return rec, err
	}
	return r.findOne(ctx, bson.M{"category": primitive.Regex{Pattern: anchoredPattern(label), Options: "i"}})
}

func (r *MongoRepository) List(ctx context.Context, limit int) ([]Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []mongoCategory
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.record())
	}
	return out, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (Record, error) {
	var doc mongoCategory
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return doc.record(), nil
}
