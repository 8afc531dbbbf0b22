package manufacturer

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

var ErrOrderNotFound = errors.New("order not found")

type Store interface {
	Insert(ctx context.Context, o *Order) error
	ByStatus(ctx context.Context, s status.Status) ([]Order, error)
	ByID(ctx context.Context, id string) (*Order, error)
	Save(ctx context.Context, o *Order) error
}

type Repo struct{ C *mongo.Collection }

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *Repo) Insert(ctx context.Context, o *Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	o.CreatedAt, o.UpdatedAt = now, now
	_, err := r.C.InsertOne(ctx, o)
	return err
}

func (r *Repo) ByStatus(ctx context.Context, s status.Status) ([]Order, error) {
	cur, err := r.C.Find(ctx, bson.M{"status": s}, newestFirst)
	if err != nil {
		return nil, err
	}
	orders := []Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repo) ByID(ctx context.Context, id string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	var o Order
	err = r.C.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) Save(ctx context.Context, o *Order) error {
	o.UpdatedAt = time.Now().UTC()
	_, err := r.C.UpdateByID(ctx, o.ID, bson.M{"$set": bson.M{
		"status":               o.Status,
		"productId":            o.ProductID,
		"brand":                o.Brand,
		"color":                o.Color,
		"manufacturedLocation": o.ManufacturedLocation,
		"manufacturedDate":     o.ManufacturedDate,
		"updatedAt":            o.UpdatedAt,
	}})
	return err
}
