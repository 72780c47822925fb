package service

import (
	"context"

	"millage/internal/repository"
)

type TablesService interface {
	GetCountTablesBD(ctx context.Context) (int, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) GetCountTablesBD(ctx context.Context) (int, error) {
	return t.tablesRepo.CountTablesDB(ctx)
}
