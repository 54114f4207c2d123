package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"savayas/database"
	"savayas/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.DB().Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes includes the partial unique index over
// (professional_id, date, start_time) restricted to non-cancelled statuses.
// It is the storage-level guard that makes two identical concurrent bookings
// resolve to exactly one winner.
func (r *MongoAppointmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "professional_id", Value: 1}, {Key: "date", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "professional_id", Value: 1},
				{Key: "date", Value: 1},
				{Key: "start_time", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": bson.A{
					models.AppointmentPending,
					models.AppointmentConfirmed,
					models.AppointmentCompleted,
				}},
			}),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by ID. Returns nil when absent.
func (r *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch appointment %s: %w", id, err)
	}
	return &appt, nil
}

// ListByProfessionalAndDate returns the non-cancelled appointments for one
// professional on one date. This is the read feeding slot computation.
func (r *MongoAppointmentRepo) ListByProfessionalAndDate(professionalID, date string) ([]models.Appointment, error) {
	return r.list(bson.M{
		"professional_id": professionalID,
		"date":            date,
		"status":          bson.M{"$ne": models.AppointmentCancelled},
	})
}

// ListByUser returns all appointments booked by a client.
func (r *MongoAppointmentRepo) ListByUser(userID string) ([]models.Appointment, error) {
	return r.list(bson.M{"user_id": userID})
}

// ListByProfessional returns a professional's full calendar.
func (r *MongoAppointmentRepo) ListByProfessional(professionalID string) ([]models.Appointment, error) {
	return r.list(bson.M{"professional_id": professionalID})
}

// GetAll returns every appointment (admin surface).
func (r *MongoAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return r.list(bson.M{})
}

func (r *MongoAppointmentRepo) list(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// UpdateStatus changes the lifecycle status of an appointment.
func (r *MongoAppointmentRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update status for appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

// SetPayment attaches a payment record to an appointment.
func (r *MongoAppointmentRepo) SetPayment(id, paymentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"payment_id": paymentID, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to attach payment to appointment %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

// CompletePastConfirmed flips confirmed appointments whose date lies strictly
// before the given day to completed. Same-day appointments are left to the
// professional since only the date is indexed for comparison.
func (r *MongoAppointmentRepo) CompletePastConfirmed(now time.Time) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	today := now.Format("2006-01-02")
	filter := bson.M{
		"status": models.AppointmentConfirmed,
		"date":   bson.M{"$lt": today},
	}
	update := bson.M{"$set": bson.M{"status": models.AppointmentCompleted, "updated_at": now}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past appointments: %w", err)
	}
	return result.ModifiedCount, nil
}
