package mongo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echart-dentnu/echart-api/internal/core/domain"
	"github.com/echart-dentnu/echart-api/internal/core/ports"
)

const usersCollection = "tbdentalrecorduser"

// UserRepository persists staff accounts. It implements both the full
// ports.UserRepository surface and the ports.CredentialStore subset the
// auth flow depends on.
type UserRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{db: db, coll: db.Collection(usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	existing := r.coll.FindOne(ctx, bson.M{"users": user.Users})
	if existing.Err() == nil {
		return nil, domain.ErrUserExists
	}

	id, err := nextSequence(ctx, r.db, usersCollection)
	if err != nil {
		return nil, err
	}
	user.UserID = id

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return nil, mapUserWriteError("insert user", err)
	}
	return user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := r.coll.FindOne(ctx, bson.M{"users": username}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID int) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.User
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

// UpdateStatus writes the login marker. Deliberately a blind write: the
// preceding read and this update are not transactional (see AuthService).
func (r *UserRepository) UpdateStatus(ctx context.Context, userID, status int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"userId": userID}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, in ports.ListUsersInput) (*ports.UserPage, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if in.Keyword != "" {
		pattern := primitiveRegex(in.Keyword)
		filter["$or"] = bson.A{
			bson.M{"fName": pattern},
			bson.M{"lName": pattern},
		}
	}
	if in.RoleID != 0 {
		filter["roleID"] = in.RoleID
	}
	if in.ClinicID != "" && in.ClinicID != "0" {
		filter["clinicid"] = in.ClinicID
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "userId", Value: -1}}).
		SetSkip(int64((in.Page - 1) * in.Limit)).
		SetLimit(int64(in.Limit))

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return &ports.UserPage{
		Data:      users,
		Total:     total,
		PageCount: int(math.Ceil(float64(total) / float64(in.Limit))),
	}, nil
}

func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Renaming users to a taken username trips the unique index here,
	// just as on insert.
	res, err := r.coll.ReplaceOne(ctx, bson.M{"userId": user.UserID}, user)
	if err != nil {
		return mapUserWriteError("update user", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, userID int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the queries above rely on.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "users", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "roleID", Value: 1}}},
		{Keys: bson.D{{Key: "clinicid", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// mapUserWriteError translates unique-index violations into the domain
// sentinel; anything else is wrapped with the operation name.
func mapUserWriteError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrUserExists
	}
	return fmt.Errorf("%s: %w", op, err)
}

// primitiveRegex builds a case-insensitive substring match with the
// keyword treated as a literal.
func primitiveRegex(keyword string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(keyword), "$options": "i"}
}
