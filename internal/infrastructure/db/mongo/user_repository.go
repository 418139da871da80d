package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/glossario/glossary-api/internal/core/domain"
)

const userCollection = "users"

// UserRepository is the Mongo-backed credential store. It is an optional
// backend selected by configuration; the memory adapter is the default.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(userCollection)}
}

type mongoUser struct {
	UserID   int64  `bson:"user_id"`
	Username string `bson:"username"`
	Password string `bson:"password"`
	Role     string `bson:"role"`
}

// Seed upserts the startup account set by username. Existing passwords are
// overwritten so a restart always begins from the fixed seed state.
func (r *UserRepository) Seed(ctx context.Context, users []domain.User) error {
	for _, u := range users {
		doc := mongoUser{UserID: u.ID, Username: u.Username, Password: u.Password, Role: u.Role}
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"username": u.Username},
			bson.M{"$set": doc},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.Username, err)
		}
	}
	return nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc mongoUser
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:       doc.UserID,
		Username: doc.Username,
		Password: doc.Password,
		Role:     doc.Role,
	}, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, newPassword string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"password": newPassword}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
