package dummydb

import (
	"context"

	"github.com/nabha-edu/shiksha/core/literacy"
)

type moduleRepository struct {
	db *moduleTable
}

var _ literacy.Repository = (*moduleRepository)(nil) // interface compliance check

func NewModuleRepository(db *DB) literacy.Repository {
	return &moduleRepository{db: db.module}
}

func (repo *moduleRepository) CreateModule(_ context.Context, mod literacy.Module) (literacy.Module, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[mod.ID] = &mod
	return mod, nil
}

func (repo *moduleRepository) GetModuleByID(_ context.Context, id string) (literacy.Module, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if mod, ok := repo.db.table[id]; ok {
		return *mod, nil
	}
	return literacy.Module{}, literacy.ErrNotFound
}

func (repo *moduleRepository) FilterModules(_ context.Context, filter literacy.QueryFilter) ([]literacy.Module, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var modules []literacy.Module
	for _, mod := range repo.db.table {
		if filter.Category != "" && mod.Category != filter.Category {
			continue
		}
		if filter.Level != "" && mod.Level != filter.Level {
			continue
		}
		modules = append(modules, *mod)
	}
	return modules, nil
}
