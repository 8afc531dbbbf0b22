package distributor

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

var ErrShipmentNotFound = errors.New("shipment not found")

type Store interface {
	Insert(ctx context.Context, s *Shipment) error
	ByStatus(ctx context.Context, st status.Status) ([]Shipment, error)
	ByID(ctx context.Context, id string) (*Shipment, error)
	Save(ctx context.Context, s *Shipment) error
}

type Repo struct{ C *mongo.Collection }

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *Repo) Insert(ctx context.Context, s *Shipment) error {
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	s.CreatedAt, s.UpdatedAt = now, now
	_, err := r.C.InsertOne(ctx, s)
	return err
}

func (r *Repo) ByStatus(ctx context.Context, st status.Status) ([]Shipment, error) {
	cur, err := r.C.Find(ctx, bson.M{"status": st}, newestFirst)
	if err != nil {
		return nil, err
	}
	shipments := []Shipment{}
	if err := cur.All(ctx, &shipments); err != nil {
		return nil, err
	}
	return shipments, nil
}

func (r *Repo) ByID(ctx context.Context, id string) (*Shipment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrShipmentNotFound
	}
	var s Shipment
	err = r.C.FindOne(ctx, bson.M{"_id": oid}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrShipmentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repo) Save(ctx context.Context, s *Shipment) error {
	s.UpdatedAt = time.Now().UTC()
	_, err := r.C.UpdateByID(ctx, s.ID, bson.M{"$set": bson.M{
		"status":            s.Status,
		"trackingNumber":    s.TrackingNumber,
		"shippingMethod":    s.ShippingMethod,
		"shipDate":          s.ShipDate,
		"estimatedDelivery": s.EstimatedDelivery,
		"deliveryDate":      s.DeliveryDate,
		"updatedAt":         s.UpdatedAt,
	}})
	return err
}
