package product

import (
	"context"
	"errors"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository reads products from the `products` collection, where
// product_id and subcategory_id may be stored as numbers or strings.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection("products")}
}

type mongoProduct struct {
	ProductID     bson.RawValue `bson:"product_id"`
	ProductCode   string        `bson:"product_code"`
	Brand         string        `bson:"brand"`
	SubcategoryID bson.RawValue `bson:"subcategory_id"`
	Subcategory   string        `bson:"subcategory"`
}

func (r *MongoRepository) FindByID(ctx context.Context, key Key) (Product, error) {
	var doc mongoProduct
	err := r.collection.FindOne(ctx, bson.M{"product_id": key.Value()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Product{}, ErrNotFound
		}
		return Product{}, err
	}

	p := Product{
		Code:        doc.ProductCode,
		Brand:       doc.Brand,
		Subcategory: doc.Subcategory,
	}
	if n, ok := rawInt(doc.ProductID); ok {
		p.ID = n
	}
	if n, ok := rawInt(doc.SubcategoryID); ok {
		p.SubcategoryID = int(n)
	}
	return p, nil
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// rawInt reads an integer stored as int32, int64, double or decimal string.
func rawInt(v bson.RawValue) (int64, bool) {
	switch v.Type {
	case bson.TypeInt32:
		return int64(v.Int32()), true
	case bson.TypeInt64:
		return v.Int64(), true
	case bson.TypeDouble:
		return int64(v.Double()), true
	case bson.TypeString:
		n, err := strconv.ParseInt(v.StringValue(), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
