package service

import (
	"millage/internal/cache"
	"millage/internal/repository"
	"millage/internal/storage"
)

type Service struct {
	Board  BoardService
	Post   PostService
	Tables TablesService
}

// NewService wires the services. A nil pageCache disables page caching.
func NewService(rep *repository.Repository, storage storage.Storage, pageCache cache.PageCache) *Service {
	if pageCache == nil {
		pageCache = cache.NopPageCache{}
	}

	pages := NewCachedQueryBuilder(NewQueryBuilder(rep), pageCache)

	return &Service{
		Board:  NewBoardService(rep, pages, pageCache),
		Post:   NewPostService(rep, storage, pageCache),
		Tables: NewTablesService(rep.Tables),
	}
}
