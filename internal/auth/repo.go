package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

type Store interface {
	Insert(ctx context.Context, u *User) error
	ByEmail(ctx context.Context, email string) (*User, error)
}

type Repo struct{ C *mongo.Collection }

func (r *Repo) Insert(ctx context.Context, u *User) error {
	if _, err := r.ByEmail(ctx, u.Email); err == nil {
		return ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.CreatedAt = time.Now().UTC()
	_, err := r.C.InsertOne(ctx, u)
	return err
}

func (r *Repo) ByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.C.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
