package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/authbase/user-service/internal/core/domain"
)

const (
	usersCollection    = "users"
	countersCollection = "counters"

	// queryTimeout bounds every store call; requests never wait on the
	// store indefinitely and no call is ever retried.
	queryTimeout = 5 * time.Second
)

type MongoUserRepository struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{
		users:    db.Collection(usersCollection),
		counters: db.Collection(countersCollection),
	}
}

type mongoUser struct {
	ID             int64     `bson:"_id"`
	Name           string    `bson:"name"`
	Email          string    `bson:"email"`
	MobileNumber   string    `bson:"mobile_number"`
	DateOfBirth    time.Time `bson:"date_of_birth"`
	HashedPassword string    `bson:"hashed_password"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID,
		Name:         mu.Name,
		Email:        mu.Email,
		MobileNumber: mu.MobileNumber,
		DateOfBirth:  mu.DateOfBirth.UTC(),
		PasswordHash: mu.HashedPassword,
	}
}

// EnsureIndexes creates the unique indexes backing the email and
// mobile_number uniqueness invariants. Call once at startup, before the
// first request is served.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "mobile_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("create user indexes: %w", err)
	}
	return nil
}

// Create allocates an integer id and inserts the record. A duplicate-key
// rejection from either unique index comes back as domain.ErrDuplicateUser.
func (r *MongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		ID:             id,
		Name:           user.Name,
		Email:          user.Email,
		MobileNumber:   user.MobileNumber,
		DateOfBirth:    user.DateOfBirth.UTC(),
		HashedPassword: user.PasswordHash,
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindByPhone(ctx context.Context, mobileNumber string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"mobile_number": mobileNumber})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.users.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// nextID allocates the next integer user id from the counters collection
// via an atomic $inc upsert.
func (r *MongoUserRepository) nextID(ctx context.Context) (int64, error) {
	var out struct {
		Seq int64 `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": usersCollection},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("allocate user id: %w", err)
	}
	return out.Seq, nil
}
