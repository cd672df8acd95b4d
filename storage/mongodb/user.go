package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nabha-edu/shiksha/core/user"
)

type userRepository struct {
	col *mongo.Collection
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *mongo.Database) user.Repository {
	return &userRepository{col: db.Collection(usersCollection)}
}

func (repo *userRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	err := repo.col.FindOne(ctx, bson.M{"email": email}).Err()
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "checking email uniqueness")
	}
	return user.ErrEmailExists
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if _, err := repo.col.InsertOne(ctx, usr); err != nil {
		// the unique index is the authority; the pre-check only races with it
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	var usr user.User
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&usr); err != nil {
		if err == mongo.ErrNoDocuments {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user by id")
	}
	return usr, nil
}

func (repo *userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var usr user.User
	if err := repo.col.FindOne(ctx, bson.M{"email": email}).Decode(&usr); err != nil {
		if err == mongo.ErrNoDocuments {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "getting user by email")
	}
	return usr, nil
}

func (repo *userRepository) FilterUsers(ctx context.Context, filter user.QueryFilter) ([]user.User, error) {
	query := bson.M{}
	if filter.Role != "" {
		query["role"] = filter.Role
	}
	if filter.ClassName != "" {
		query["class_name"] = filter.ClassName
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "filtering users")
	}
	var users []user.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decoding users")
	}
	return users, nil
}

func (repo *userRepository) UpdateOrCreateUser(ctx context.Context, usr user.User) (user.User, error) {
	update := bson.M{
		"$set": bson.M{
			"name":                usr.Name,
			"role":                usr.Role,
			"school":              usr.School,
			"class_name":          usr.ClassName,
			"language_preference": usr.LanguagePreference,
			"password":            usr.PasswordHash,
		},
		"$setOnInsert": bson.M{
			"_id":        usr.ID,
			"created_at": usr.CreatedAt,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out user.User
	if err := repo.col.FindOneAndUpdate(ctx, bson.M{"email": usr.Email}, update, opts).Decode(&out); err != nil {
		return user.User{}, errors.Wrap(err, "upserting user")
	}
	return out, nil
}
