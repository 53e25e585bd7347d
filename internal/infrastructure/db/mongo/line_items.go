package mongo

import "github.com/storefront/ecommerce-api/internal/core/domain"

type lineItemDocument struct {
	ProductID string `bson:"product_id"`
	Quantity  int    `bson:"quantity"`
}

func toLineItemDocs(items []domain.LineItem) []lineItemDocument {
	out := make([]lineItemDocument, len(items))
	for i, it := range items {
		out[i] = lineItemDocument{ProductID: it.ProductID, Quantity: it.Quantity}
	}
	return out
}

func toLineItems(docs []lineItemDocument) []domain.LineItem {
	out := make([]domain.LineItem, len(docs))
	for i, d := range docs {
		out[i] = domain.LineItem{ProductID: d.ProductID, Quantity: d.Quantity}
	}
	return out
}
