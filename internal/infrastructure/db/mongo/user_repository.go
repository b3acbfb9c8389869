package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/usersvc/users-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository persists user records in MongoDB. Email uniqueness is
// enforced by a unique index, so concurrent inserts of the same email resolve
// at the storage layer: one succeeds, the other surfaces ErrEmailTaken.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID             string    `bson:"_id"`
	Email          string    `bson:"email"`
	CredentialHash string    `bson:"credential_hash,omitempty"`
	Role           string    `bson:"user_type,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:             d.ID,
		Email:          d.Email,
		CredentialHash: d.CredentialHash,
		Role:           domain.Role(d.Role),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// EnsureIndexes creates the unique email index. Must run before the first
// Create so uniqueness is never left to application code.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserRepository) Create(ctx context.Context, email, credentialHash string, role domain.Role) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := userDoc{
		ID:             uuid.NewString(),
		Email:          email,
		CredentialHash: credentialHash,
		Role:           string(role),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateEmail sets a new email in a single atomic findAndModify, preserving
// id and created_at and advancing updated_at.
func (r *UserRepository) UpdateEmail(ctx context.Context, id, newEmail string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"email":      newEmail,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("update user email: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Deleting a missing id matches zero documents; that is not an error.
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// List pages users ordered by _id. The projection deliberately excludes the
// credential hash and the role: listings show id, email and created_at only.
func (r *UserRepository) List(ctx context.Context, limit, offset int64) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(limit).
		SetSkip(offset).
		SetProjection(bson.M{"credential_hash": 0, "user_type": 0})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, *d.toDomain())
	}
	return users, nil
}

// CredentialMaterial returns the id and stored hash for the login path. It
// projects only those two fields and is not wired to any HTTP-facing read.
func (r *UserRepository) CredentialMaterial(ctx context.Context, email string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"_id": 1, "credential_hash": 1})

	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", "", domain.ErrUserNotFound
		}
		return "", "", fmt.Errorf("find credential material: %w", err)
	}
	return doc.ID, doc.CredentialHash, nil
}
