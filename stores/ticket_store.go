package stores

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mkim2178/My-Jet/models"
)

// TicketStore persists ticket records in the tickets collection.
type TicketStore struct {
	coll *mongo.Collection
}

func NewTicketStore(coll *mongo.Collection) *TicketStore {
	return &TicketStore{coll: coll}
}

func (s *TicketStore) Create(ctx context.Context, ticket models.Ticket) error {
	if _, err := s.coll.InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("insert ticket: %w", err)
	}
	return nil
}

func (s *TicketStore) FindAllByOwner(ctx context.Context, ownerLoginID string) ([]models.Ticket, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"owner_login_id": ownerLoginID})
	if err != nil {
		return nil, fmt.Errorf("find tickets: %w", err)
	}
	defer cursor.Close(ctx)

	var tickets []models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, fmt.Errorf("decode tickets: %w", err)
	}
	return tickets, nil
}

func (s *TicketStore) DeleteAllByOwner(ctx context.Context, ownerLoginID string) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{"owner_login_id": ownerLoginID}); err != nil {
		return fmt.Errorf("delete tickets: %w", err)
	}
	return nil
}

// DeleteOneByOwnerAndDate removes the owner's ticket departing on the given
// date. It reports whether a ticket was actually deleted, so callers only
// debit mileage for a real cancellation.
func (s *TicketStore) DeleteOneByOwnerAndDate(ctx context.Context, ownerLoginID, departureDate string) (bool, error) {
	result, err := s.coll.DeleteOne(ctx, bson.M{
		"owner_login_id": ownerLoginID,
		"departure_date": departureDate,
	})
	if err != nil {
		return false, fmt.Errorf("delete ticket: %w", err)
	}
	return result.DeletedCount > 0, nil
}

// CountByOwnerAndDate serves the one-flight-per-day rule. The query hits
// the compound (owner_login_id, departure_date) index.
func (s *TicketStore) CountByOwnerAndDate(ctx context.Context, ownerLoginID, departureDate string) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{
		"owner_login_id": ownerLoginID,
		"departure_date": departureDate,
	})
	if err != nil {
		return 0, fmt.Errorf("count tickets: %w", err)
	}
	return count, nil
}
