package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"sahara/models"
)

// statusCountExpr builds the conditional-sum expression that counts documents
// in the given status.
func statusCountExpr(status string) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{
		bson.M{"$eq": bson.A{"$status", status}}, 1, 0,
	}}}
}

// Stats aggregates revenue and per-status counts over the entire filtered set.
// An empty set yields zero-filled statistics.
func (r *MongoBookingRepo) Stats(filter models.BookingFilter) (models.BookingStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": filterQuery(filter)},
		{"$group": bson.M{
			"_id":               nil,
			"totalRevenue":      bson.M{"$sum": "$totalAmount"},
			"totalBookings":     bson.M{"$sum": 1},
			"pendingBookings":   statusCountExpr(models.StatusPending),
			"confirmedBookings": statusCountExpr(models.StatusConfirmed),
			"completedBookings": statusCountExpr(models.StatusCompleted),
			"cancelledBookings": statusCountExpr(models.StatusCancelled),
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return models.BookingStats{}, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var stats models.BookingStats
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return models.BookingStats{}, fmt.Errorf("failed to decode booking stats: %w", err)
		}
	}
	return stats, nil
}

// PackagePopularity counts bookings grouped by package identifier, most
// popular first. The structured experience title wins over the legacy
// tourPackage when both are present.
func (r *MongoBookingRepo) PackagePopularity() ([]models.PackageCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id": bson.M{"$ifNull": bson.A{
				bson.M{"$ifNull": bson.A{"$experienceTitle", "$tourPackage"}}, "",
			}},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"count": -1}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate package popularity: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.PackageCount
	for cursor.Next(ctx) {
		var c models.PackageCount
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode package count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, nil
}
