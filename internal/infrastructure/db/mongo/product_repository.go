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
	"github.com/storefront/ecommerce-api/internal/core/ports"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"desc"`
	Image       string             `bson:"img"`
	Categories  []string           `bson:"categories"`
	Size        string             `bson:"size,omitempty"`
	Color       string             `bson:"color,omitempty"`
	Price       float64            `bson:"price"`
	InStock     bool               `bson:"in_stock"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d productDocument) toDomain() *domain.Product {
	categories := d.Categories
	if categories == nil {
		categories = []string{}
	}
	return &domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
		Categories:  categories,
		Size:        d.Size,
		Color:       d.Color,
		Price:       d.Price,
		InStock:     d.InStock,
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := productDocument{
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Categories:  p.Categories,
		Size:        p.Size,
		Color:       p.Color,
		Price:       p.Price,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("insert product: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) List(ctx context.Context, f ports.ProductListFilter) ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.Category != "" {
		filter["categories"] = f.Category
	}

	opts := options.Find()
	if f.NewestFirst {
		opts.SetSort(bson.D{{Key: "created_at", Value: -1}})
	}
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]*domain.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ProductRepository) UpdateByID(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["desc"] = *patch.Description
	}
	if patch.Image != nil {
		set["img"] = *patch.Image
	}
	if patch.Categories != nil {
		set["categories"] = *patch.Categories
	}
	if patch.Size != nil {
		set["size"] = *patch.Size
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.InStock != nil {
		set["in_stock"] = *patch.InStock
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc productDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, domain.ErrProductNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, domain.ErrProductExists
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return res.DeletedCount > 0, nil
}
