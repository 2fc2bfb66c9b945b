package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/secbank/auth-gateway/internal/core/domain"
	"github.com/secbank/auth-gateway/internal/core/ports"
)

const usersCollection = "users"

// CredentialRepository is the Mongo-backed customer credential store.
// Unique indexes on username, id_number, and account_number make insert
// the authoritative conflict check; see EnsureIndexes.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	FullName      string             `bson:"full_name"`
	IDNumber      string             `bson:"id_number"`
	Username      string             `bson:"username"`
	AccountNumber string             `bson:"account_number"`
	PasswordHash  string             `bson:"password_hash"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:            d.ID.Hex(),
		FullName:      d.FullName,
		IDNumber:      d.IDNumber,
		Username:      d.Username,
		AccountNumber: d.AccountNumber,
		PasswordHash:  d.PasswordHash,
		CreatedAt:     unixToTime(d.CreatedAt),
		UpdatedAt:     unixToTime(d.UpdatedAt),
	}
}

func (r *CredentialRepository) FindByAnyOf(ctx context.Context, lookup ports.CredentialLookup) (*domain.User, error) {
	var or []bson.M
	if lookup.Username != "" {
		or = append(or, bson.M{"username": lookup.Username})
	}
	if lookup.IDNumber != "" {
		or = append(or, bson.M{"id_number": lookup.IDNumber})
	}
	if lookup.AccountNumber != "" {
		or = append(or, bson.M{"account_number": lookup.AccountNumber})
	}
	if len(or) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func (r *CredentialRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *CredentialRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"account_number": accountNumber})
}

func (r *CredentialRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CredentialRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	doc := userDoc{
		FullName:      user.FullName,
		IDNumber:      user.IDNumber,
		Username:      user.Username,
		AccountNumber: user.AccountNumber,
		PasswordHash:  user.PasswordHash,
		CreatedAt:     user.CreatedAt.Unix(),
		UpdatedAt:     user.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
