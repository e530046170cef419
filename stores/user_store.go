package stores

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mkim2178/My-Jet/models"
)

var (
	ErrDuplicateLoginID = errors.New("duplicate login_id")
	ErrDuplicateEmail   = errors.New("duplicate email")
)

// UserStore persists user records in the users collection.
type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(coll *mongo.Collection) *UserStore {
	return &UserStore{coll: coll}
}

// FindByLoginID returns the user with the given login id, or nil if no such
// user exists.
func (s *UserStore) FindByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"login_id": loginID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user. Login id and email must be unique; the two
// existence checks are not atomic with the insert, so the unique indexes
// are the final arbiter under concurrent registrations.
func (s *UserStore) Create(ctx context.Context, user models.User) error {
	count, err := s.coll.CountDocuments(ctx, bson.M{"login_id": user.LoginID})
	if err != nil {
		return fmt.Errorf("check login_id: %w", err)
	}
	if count > 0 {
		return ErrDuplicateLoginID
	}
	count, err = s.coll.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, loginID string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"login_id": loginID}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// AdjustMileage applies a relative mileage change as a single $inc, so
// concurrent bookings for the same user do not lose updates.
func (s *UserStore) AdjustMileage(ctx context.Context, loginID string, delta int) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"login_id": loginID},
		bson.M{"$inc": bson.M{"mileage": delta}},
	)
	if err != nil {
		return fmt.Errorf("adjust mileage: %w", err)
	}
	return nil
}

func (s *UserStore) SetMileage(ctx context.Context, loginID string, value int) error {
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"login_id": loginID},
		bson.M{"$set": bson.M{"mileage": value}},
	)
	if err != nil {
		return fmt.Errorf("set mileage: %w", err)
	}
	return nil
}
