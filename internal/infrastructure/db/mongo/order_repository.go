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

const ordersCollection = "orders"

type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type addressDocument struct {
	Line1      string `bson:"line1"`
	Line2      string `bson:"line2,omitempty"`
	City       string `bson:"city"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
}

type orderDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Products  []lineItemDocument `bson:"products"`
	Amount    float64            `bson:"amount"`
	Address   addressDocument    `bson:"address"`
	Status    string             `bson:"status"`
	PaymentID string             `bson:"payment_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func toAddressDoc(a domain.Address) addressDocument {
	return addressDocument{Line1: a.Line1, Line2: a.Line2, City: a.City, PostalCode: a.PostalCode, Country: a.Country}
}

func (d orderDocument) toDomain() *domain.Order {
	return &domain.Order{
		ID:       d.ID.Hex(),
		UserID:   d.UserID,
		Products: toLineItems(d.Products),
		Amount:   d.Amount,
		Address: domain.Address{
			Line1:      d.Address.Line1,
			Line2:      d.Address.Line2,
			City:       d.Address.City,
			PostalCode: d.Address.PostalCode,
			Country:    d.Address.Country,
		},
		Status:    domain.OrderStatus(d.Status),
		PaymentID: d.PaymentID,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := orderDocument{
		UserID:    o.UserID,
		Products:  toLineItemDocs(o.Products),
		Amount:    o.Amount,
		Address:   toAddressDoc(o.Address),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orderDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *OrderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrderRepository) find(ctx context.Context, filter bson.M) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	out := make([]*domain.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *OrderRepository) UpdateByID(ctx context.Context, id string, patch domain.OrderPatch) (*domain.Order, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrOrderNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Products != nil {
		set["products"] = toLineItemDocs(*patch.Products)
	}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.Address != nil {
		set["address"] = toAddressDoc(*patch.Address)
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orderDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	oid, ok := objectID(id)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("delete order: %w", err)
	}
	return res.DeletedCount > 0, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id, paymentID string) error {
	oid, ok := objectID(id)
	if !ok {
		return domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "status": string(domain.OrderPending)},
		bson.M{"$set": bson.M{
			"status":     string(domain.OrderPaid),
			"payment_id": paymentID,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either gone or paid by a concurrent checkout.
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("mark order paid: %w", err)
		}
		if n == 0 {
			return domain.ErrOrderNotFound
		}
		return domain.ErrOrderNotPayable
	}
	return nil
}

func (r *OrderRepository) IncomeByMonth(ctx context.Context, since time.Time) ([]domain.MonthlyIncome, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, monthlyPipeline(since, "$amount"))
	if err != nil {
		return nil, fmt.Errorf("aggregate income: %w", err)
	}
	out := []domain.MonthlyIncome{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode income: %w", err)
	}
	return out, nil
}
