package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crediya/auth-service/internal/core/domain"
)

const userCollection = "users"

type MongoUserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{coll: db.Collection(userCollection)}
}

// EnsureIndexes creates the unique email index. The index backs the
// email-uniqueness invariant against concurrent registrations: the
// validator's existence check is advisory, the index is authoritative.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	GivenName    string             `bson:"given_name"`
	FamilyName   string             `bson:"family_name"`
	BirthDate    int64              `bson:"birth_date,omitempty"`
	Email        string             `bson:"email"`
	DocumentID   string             `bson:"document_id"`
	Phone        string             `bson:"phone,omitempty"`
	RoleID       *int64             `bson:"role_id,omitempty"`
	BaseSalary   float64            `bson:"base_salary"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *MongoUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return n > 0, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *MongoUserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := mongoUser{
		GivenName:    user.GivenName,
		FamilyName:   user.FamilyName,
		BirthDate:    user.BirthDate.Unix(),
		Email:        user.Email,
		DocumentID:   user.DocumentID,
		Phone:        user.Phone,
		RoleID:       user.RoleID,
		BaseSalary:   user.BaseSalary,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}

	_, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		// A concurrent registration can slip past the validator's
		// existence check; the unique index catches it here.
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.EmailTakenError{Email: user.Email}
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return r.FindByEmail(ctx, user.Email)
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		GivenName:    mu.GivenName,
		FamilyName:   mu.FamilyName,
		BirthDate:    unixToTime(mu.BirthDate),
		Email:        mu.Email,
		DocumentID:   mu.DocumentID,
		Phone:        mu.Phone,
		RoleID:       mu.RoleID,
		BaseSalary:   mu.BaseSalary,
		PasswordHash: mu.PasswordHash,
		CreatedAt:    unixToTime(mu.CreatedAt),
		UpdatedAt:    unixToTime(mu.UpdatedAt),
	}
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
