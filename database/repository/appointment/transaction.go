package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"savayas/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// InsertBooked inserts an appointment only if its interval is still free.
// The overlap re-check and the insert run in one Mongo transaction, so a
// concurrent booking for an overlapping (not just identical) interval loses
// with ErrSlotTaken. The partial unique index backs this up for identical
// start times even outside a transaction-capable deployment.
//
// Times are zero-padded "HH:MM" strings, so lexicographic comparison matches
// chronological order and the half-open overlap test can run in the query:
// [a0,a1) and [b0,b1) overlap iff a0 < b1 AND b0 < a1.
func (r *MongoAppointmentRepo) InsertBooked(ctx context.Context, appt *models.Appointment) error {
	now := time.Now()
	appt.CreatedAt = now
	appt.UpdatedAt = now

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		overlap := bson.M{
			"professional_id": appt.ProfessionalID,
			"date":            appt.Date,
			"status":          bson.M{"$ne": models.AppointmentCancelled},
			"start_time":      bson.M{"$lt": appt.EndTime},
			"end_time":        bson.M{"$gt": appt.StartTime},
		}
		count, err := r.coll.CountDocuments(sc, overlap)
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if err == ErrSlotTaken {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
