package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nabha-edu/shiksha/core/literacy"
)

type moduleRepository struct {
	col *mongo.Collection
}

var _ literacy.Repository = (*moduleRepository)(nil) // interface compliance check

func NewModuleRepository(db *mongo.Database) literacy.Repository {
	return &moduleRepository{col: db.Collection(modulesCollection)}
}

func (repo *moduleRepository) CreateModule(ctx context.Context, mod literacy.Module) (literacy.Module, error) {
	if _, err := repo.col.InsertOne(ctx, mod); err != nil {
		return literacy.Module{}, errors.Wrap(err, "inserting module")
	}
	return mod, nil
}

func (repo *moduleRepository) GetModuleByID(ctx context.Context, id string) (literacy.Module, error) {
	var mod literacy.Module
	if err := repo.col.FindOne(ctx, bson.M{"_id": id}).Decode(&mod); err != nil {
		if err == mongo.ErrNoDocuments {
			return literacy.Module{}, literacy.ErrNotFound
		}
		return literacy.Module{}, errors.Wrap(err, "getting module by id")
	}
	return mod, nil
}

func (repo *moduleRepository) FilterModules(ctx context.Context, filter literacy.QueryFilter) ([]literacy.Module, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}

	cursor, err := repo.col.Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "filtering modules")
	}
	var modules []literacy.Module
	if err = cursor.All(ctx, &modules); err != nil {
		return nil, errors.Wrap(err, "decoding modules")
	}
	return modules, nil
}
