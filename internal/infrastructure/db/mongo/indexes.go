package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes the gateway relies on for
// race resolution. Two concurrent signups with the same identifiers can
// both pass the pre-check; the duplicate-key failure here is what
// guarantees only one of them lands.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "id_number", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "account_number", Value: 1}}, Options: unique},
	}
	if _, err := db.Collection(usersCollection).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	employeeIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "employee_number", Value: 1}}, Options: unique},
	}
	if _, err := db.Collection(employeesCollection).Indexes().CreateMany(ctx, employeeIndexes); err != nil {
		return fmt.Errorf("employees indexes: %w", err)
	}

	paymentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := db.Collection(paymentsCollection).Indexes().CreateMany(ctx, paymentIndexes); err != nil {
		return fmt.Errorf("payments indexes: %w", err)
	}

	return nil
}
