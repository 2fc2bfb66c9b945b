package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

const paymentsCollection = "payments"

// PaymentRepository is the Mongo-backed payment instruction store.
type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(paymentsCollection)}
}

type paymentDoc struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Reference          string             `bson:"reference"`
	UserID             string             `bson:"user_id"`
	Beneficiary        string             `bson:"beneficiary"`
	BeneficiaryAccount string             `bson:"beneficiary_account"`
	Amount             float64            `bson:"amount"`
	Currency           string             `bson:"currency"`
	SwiftCode          string             `bson:"swift_code"`
	Status             string             `bson:"status"`
	VerifiedBy         string             `bson:"verified_by,omitempty"`
	CreatedAt          int64              `bson:"created_at"`
	UpdatedAt          int64              `bson:"updated_at"`
}

func (d *paymentDoc) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:                 d.ID.Hex(),
		Reference:          d.Reference,
		UserID:             d.UserID,
		Beneficiary:        d.Beneficiary,
		BeneficiaryAccount: d.BeneficiaryAccount,
		Amount:             d.Amount,
		Currency:           d.Currency,
		SwiftCode:          d.SwiftCode,
		Status:             d.Status,
		VerifiedBy:         d.VerifiedBy,
		CreatedAt:          unixToTime(d.CreatedAt),
		UpdatedAt:          unixToTime(d.UpdatedAt),
	}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	doc := paymentDoc{
		Reference:          payment.Reference,
		UserID:             payment.UserID,
		Beneficiary:        payment.Beneficiary,
		BeneficiaryAccount: payment.BeneficiaryAccount,
		Amount:             payment.Amount,
		Currency:           payment.Currency,
		SwiftCode:          payment.SwiftCode,
		Status:             payment.Status,
		CreatedAt:          payment.CreatedAt.Unix(),
		UpdatedAt:          payment.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	created := *payment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaymentNotFound
	}

	var doc paymentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("find payment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PaymentRepository) ListByUser(ctx context.Context, userID string) ([]domain.Payment, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *PaymentRepository) ListPending(ctx context.Context) ([]domain.Payment, error) {
	return r.list(ctx, bson.M{"status": domain.PaymentPending})
}

func (r *PaymentRepository) list(ctx context.Context, filter bson.M) ([]domain.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []paymentDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}

	payments := make([]domain.Payment, 0, len(docs))
	for i := range docs {
		payments = append(payments, *docs[i].toDomain())
	}
	return payments, nil
}

func (r *PaymentRepository) SetVerified(ctx context.Context, id, verifiedBy string) (*domain.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPaymentNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":      domain.PaymentVerified,
		"verified_by": verifiedBy,
		"updated_at":  time.Now().UTC().Unix(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc paymentDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("verify payment: %w", err)
	}
	return doc.toDomain(), nil
}
