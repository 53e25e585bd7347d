package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront/ecommerce-api/internal/core/domain"
)

const cartsCollection = "carts"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartsCollection)}
}

type cartDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Products  []lineItemDocument `bson:"products"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d cartDocument) toDomain() *domain.Cart {
	return &domain.Cart{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		Products:  toLineItems(d.Products),
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *CartRepository) Create(ctx context.Context, c *domain.Cart) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := cartDocument{
		UserID:    c.UserID,
		Products:  toLineItemDocs(c.Products),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *CartRepository) FindByID(ctx context.Context, id string) (*domain.Cart, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *CartRepository) FindByUserID(ctx context.Context, userID string) (*domain.Cart, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *CartRepository) findOne(ctx context.Context, filter bson.M) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc cartDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("find cart: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CartRepository) List(ctx context.Context) ([]*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	var docs []cartDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode carts: %w", err)
	}

	out := make([]*domain.Cart, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *CartRepository) ReplaceItems(ctx context.Context, id string, items []domain.LineItem) (*domain.Cart, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrCartNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc cartDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"products": toLineItemDocs(items), "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("update cart: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete cart: %w", err)
	}
	return res.DeletedCount > 0, nil
}
