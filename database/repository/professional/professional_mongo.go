package professionalRepo

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

// MongoProfessionalRepo implements ProfessionalRepository using MongoDB.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo creates a new ProfessionalRepository backed by MongoDB.
func NewMongoProfessionalRepo() ProfessionalRepository {
	coll := database.DB().Collection("professionals")
	repo := &MongoProfessionalRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfessionalRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "license_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialization", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new professional profile.
func (r *MongoProfessionalRepo) Create(prof *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	prof.CreatedAt = now
	prof.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, prof); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("professional profile already exists for this user or license")
		}
		return fmt.Errorf("failed to create professional: %w", err)
	}
	return nil
}

// Update replaces the mutable fields of a professional profile.
func (r *MongoProfessionalRepo) Update(prof *models.Professional) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	prof.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": prof.ID}, bson.M{"$set": prof})
	if err != nil {
		return fmt.Errorf("failed to update professional with id %s: %w", prof.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", prof.ID)
	}
	return nil
}

// Delete removes a professional profile.
func (r *MongoProfessionalRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete professional with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a professional by profile ID. Returns nil when absent.
func (r *MongoProfessionalRepo) GetByID(id string) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch professional with id %s: %w", id, err)
	}
	return &prof, nil
}

// GetByUserID retrieves the profile owned by a user account. Returns nil when absent.
func (r *MongoProfessionalRepo) GetByUserID(userID string) (*models.Professional, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var prof models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch professional for user %s: %w", userID, err)
	}
	return &prof, nil
}

// Exists reports whether a professional with the given ID exists.
func (r *MongoProfessionalRepo) Exists(id string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check professional %s: %w", id, err)
	}
	return count > 0, nil
}

// ListApproved returns all approved professionals, the only ones surfaced to clients.
func (r *MongoProfessionalRepo) ListApproved() ([]models.Professional, error) {
	return r.list(bson.M{"is_approved": true})
}

// GetAll returns every professional profile, approved or not.
func (r *MongoProfessionalRepo) GetAll() ([]models.Professional, error) {
	return r.list(bson.M{})
}

func (r *MongoProfessionalRepo) list(filter bson.M) ([]models.Professional, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve professionals: %w", err)
	}
	defer cursor.Close(ctx)

	var profs []models.Professional
	if err := cursor.All(ctx, &profs); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return profs, nil
}

// SetApproved flips the approval flag on a profile.
func (r *MongoProfessionalRepo) SetApproved(id string, approved bool) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"is_approved": approved, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update approval for professional %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("professional with id %s not found", id)
	}
	return nil
}
