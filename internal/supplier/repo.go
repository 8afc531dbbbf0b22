package supplier

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ariefcatur/go-supplychain/internal/status"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrMaterialNotFound = errors.New("material not found")
)

// InsufficientStockError reports how far short the inventory is.
type InsufficientStockError struct {
	Material  string
	Required  int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough %s in stock (needed: %d, available: %d)",
		e.Material, e.Required, e.Available)
}

// Store abstracts the supplier's two collections. DecrementStock is a single
// conditional update: it succeeds only when the post-decrement stock stays
// non-negative, so concurrent acceptances against one material cannot
// interleave unsafely.
type Store interface {
	InsertOrder(ctx context.Context, o *Order) error
	Orders(ctx context.Context) ([]Order, error)
	OrdersInProduction(ctx context.Context) ([]Order, error)
	OrderByID(ctx context.Context, id string) (*Order, error)
	SaveOrder(ctx context.Context, o *Order) error

	Materials(ctx context.Context) ([]Material, error)
	MaterialByName(ctx context.Context, name string) (*Material, error)
	DecrementStock(ctx context.Context, name string, qty int) (*Material, error)
	SetStock(ctx context.Context, name string, stock int) (*Material, error)
}

type Repo struct {
	OrdersC    *mongo.Collection
	MaterialsC *mongo.Collection
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

func (r *Repo) InsertOrder(ctx context.Context, o *Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	o.CreatedAt, o.UpdatedAt = now, now
	_, err := r.OrdersC.InsertOne(ctx, o)
	return err
}

func (r *Repo) Orders(ctx context.Context) ([]Order, error) {
	return r.findOrders(ctx, bson.M{})
}

func (r *Repo) OrdersInProduction(ctx context.Context) ([]Order, error) {
	return r.findOrders(ctx, bson.M{"status": status.InProduction})
}

func (r *Repo) findOrders(ctx context.Context, filter bson.M) ([]Order, error) {
	cur, err := r.OrdersC.Find(ctx, filter, newestFirst)
	if err != nil {
		return nil, err
	}
	orders := []Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Repo) OrderByID(ctx context.Context, id string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	var o Order
	err = r.OrdersC.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *Repo) SaveOrder(ctx context.Context, o *Order) error {
	o.UpdatedAt = time.Now().UTC()
	_, err := r.OrdersC.UpdateByID(ctx, o.ID, bson.M{"$set": bson.M{
		"status":               o.Status,
		"manufacturerId":       o.ManufacturerID,
		"productId":            o.ProductID,
		"brand":                o.Brand,
		"color":                o.Color,
		"manufacturedLocation": o.ManufacturedLocation,
		"manufacturedDate":     o.ManufacturedDate,
		"updatedAt":            o.UpdatedAt,
	}})
	return err
}

func (r *Repo) Materials(ctx context.Context) ([]Material, error) {
	cur, err := r.MaterialsC.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	materials := []Material{}
	if err := cur.All(ctx, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *Repo) MaterialByName(ctx context.Context, name string) (*Material, error) {
	var m Material
	err := r.MaterialsC.FindOne(ctx, bson.M{"name": name}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMaterialNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DecrementStock decrements atomically: the filter only matches while stock
// covers qty, so a losing concurrent accept sees InsufficientStock instead of
// driving stock negative.
func (r *Repo) DecrementStock(ctx context.Context, name string, qty int) (*Material, error) {
	var m Material
	err := r.MaterialsC.FindOneAndUpdate(ctx,
		bson.M{"name": name, "stock": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"stock": -qty}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		cur, err := r.MaterialByName(ctx, name)
		if err != nil {
			return nil, err
		}
		return nil, &InsufficientStockError{Material: name, Required: qty, Available: cur.Stock}
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo) SetStock(ctx context.Context, name string, stock int) (*Material, error) {
	var m Material
	err := r.MaterialsC.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"stock": stock}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrMaterialNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// EnsureSeedMaterials populates the default inventory when the collection is
// empty. Called once at startup.
func (r *Repo) EnsureSeedMaterials(ctx context.Context) error {
	n, err := r.MaterialsC.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	docs := make([]any, 0, len(DefaultMaterials))
	for _, m := range DefaultMaterials {
		m.ID = primitive.NewObjectID()
		docs = append(docs, m)
	}
	if _, err := r.MaterialsC.InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("seeded %d default materials", len(docs))
	return nil
}
