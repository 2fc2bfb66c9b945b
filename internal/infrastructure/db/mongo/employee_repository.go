package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/secbank/auth-gateway/internal/core/domain"
)

const employeesCollection = "employees"

// EmployeeRepository is the Mongo-backed staff credential store.
type EmployeeRepository struct {
	coll *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{coll: db.Collection(employeesCollection)}
}

type employeeDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	FullName       string             `bson:"full_name"`
	EmployeeNumber string             `bson:"employee_number"`
	Username       string             `bson:"username"`
	PasswordHash   string             `bson:"password_hash"`
	CreatedAt      int64              `bson:"created_at"`
	UpdatedAt      int64              `bson:"updated_at"`
}

func (d *employeeDoc) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:             d.ID.Hex(),
		FullName:       d.FullName,
		EmployeeNumber: d.EmployeeNumber,
		Username:       d.Username,
		PasswordHash:   d.PasswordHash,
		CreatedAt:      unixToTime(d.CreatedAt),
		UpdatedAt:      unixToTime(d.UpdatedAt),
	}
}

func (r *EmployeeRepository) FindByAnyOf(ctx context.Context, username, employeeNumber string) (*domain.Employee, error) {
	var or []bson.M
	if username != "" {
		or = append(or, bson.M{"username": username})
	}
	if employeeNumber != "" {
		or = append(or, bson.M{"employee_number": employeeNumber})
	}
	if len(or) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"$or": or})
}

func (r *EmployeeRepository) FindByUsername(ctx context.Context, username string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *EmployeeRepository) FindByEmployeeNumber(ctx context.Context, employeeNumber string) (*domain.Employee, error) {
	return r.findOne(ctx, bson.M{"employee_number": employeeNumber})
}

func (r *EmployeeRepository) findOne(ctx context.Context, filter bson.M) (*domain.Employee, error) {
	var doc employeeDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EmployeeRepository) Insert(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	doc := employeeDoc{
		FullName:       employee.FullName,
		EmployeeNumber: employee.EmployeeNumber,
		Username:       employee.Username,
		PasswordHash:   employee.PasswordHash,
		CreatedAt:      employee.CreatedAt.Unix(),
		UpdatedAt:      employee.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *employee
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}
