package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"savayas/database"
	"savayas/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository backed by MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One rule per professional per weekday.
		{
			Keys:    bson.D{{Key: "professional_id", Value: 1}, {Key: "day_of_week", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// ListRules returns the rules for one professional on one weekday.
func (r *MongoAvailabilityRepo) ListRules(professionalID string, dayOfWeek int) ([]models.AvailabilityRule, error) {
	return r.list(bson.M{"professional_id": professionalID, "day_of_week": dayOfWeek})
}

// ListAll returns every rule a professional has declared, ordered by weekday.
func (r *MongoAvailabilityRepo) ListAll(professionalID string) ([]models.AvailabilityRule, error) {
	return r.list(bson.M{"professional_id": professionalID})
}

func (r *MongoAvailabilityRepo) list(filter bson.M) ([]models.AvailabilityRule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "day_of_week", Value: 1}, {Key: "start_time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availability rules: %w", err)
	}
	defer cursor.Close(ctx)

	var rules []models.AvailabilityRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode availability rules: %w", err)
	}
	return rules, nil
}

// GetByID retrieves a rule by ID. Returns nil when absent.
func (r *MongoAvailabilityRepo) GetByID(id string) (*models.AvailabilityRule, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var rule models.AvailabilityRule
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rule); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability rule %s: %w", id, err)
	}
	return &rule, nil
}

// Upsert creates the rule for (professional, dayOfWeek) or replaces the
// existing one. The rule ID is preserved on replace.
func (r *MongoAvailabilityRepo) Upsert(rule *models.AvailabilityRule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}

	filter := bson.M{
		"professional_id": rule.ProfessionalID,
		"day_of_week":     rule.DayOfWeek,
	}
	update := bson.M{
		"$set": bson.M{
			"start_time":   rule.StartTime,
			"end_time":     rule.EndTime,
			"is_available": rule.IsAvailable,
		},
		"$setOnInsert": bson.M{
			"id":              rule.ID,
			"professional_id": rule.ProfessionalID,
			"day_of_week":     rule.DayOfWeek,
		},
	}

	res := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After))
	var stored models.AvailabilityRule
	if err := res.Decode(&stored); err != nil {
		return fmt.Errorf("failed to upsert availability rule: %w", err)
	}
	*rule = stored
	return nil
}

// Delete removes a rule by ID.
func (r *MongoAvailabilityRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete availability rule %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("availability rule %s not found", id)
	}
	return nil
}
