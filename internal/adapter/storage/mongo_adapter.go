package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ssv8317/canteen-ordering/internal/core/domain"
)

// ErrUnavailable marks connection or driver failures; handlers map it to a
// generic server error.
var ErrUnavailable = errors.New("order store unavailable")

var ErrMissingFields = errors.New("missing required order fields")

// MongoAdapter persists orders in a single document collection. The store
// assigns the id; documents are never updated or deleted.
type MongoAdapter struct {
	orders *mongo.Collection
}

func NewMongoAdapter(client *mongo.Client, database, collection string) *MongoAdapter {
	return &MongoAdapter{
		orders: client.Database(database).Collection(collection),
	}
}

type orderDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	StudentName string             `bson:"studentName"`
	Stall       string             `bson:"stall"`
	Item        string             `bson:"item"`
	Quantity    int                `bson:"quantity"`
	OrderTime   time.Time          `bson:"orderTime"`
}

func (d orderDocument) toDomain() domain.Order {
	return domain.Order{
		ID:          d.ID.Hex(),
		StudentName: d.StudentName,
		Stall:       d.Stall,
		Item:        d.Item,
		Quantity:    d.Quantity,
		OrderTime:   d.OrderTime,
	}
}

func (m *MongoAdapter) InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	// Last-resort check; the service layer validates before calling.
	if order.StudentName == "" || order.Stall == "" || order.Item == "" {
		return domain.Order{}, ErrMissingFields
	}

	doc := orderDocument{
		StudentName: order.StudentName,
		Stall:       order.Stall,
		Item:        order.Item,
		Quantity:    order.Quantity,
		OrderTime:   order.OrderTime,
	}

	res, err := m.orders.InsertOne(ctx, doc)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: insert: %v", ErrUnavailable, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Order{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	order.ID = id.Hex()
	return order, nil
}

func (m *MongoAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "orderTime", Value: -1}})

	cursor, err := m.orders.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: find: %v", ErrUnavailable, err)
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.toDomain())
	}
	return orders, nil
}
