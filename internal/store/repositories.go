package store

import "devjournal/internal/logger"

// Repositories bundles every repository implementation over one shared
// database connection.
type Repositories struct {
	UserRepository    UserRepository
	EntryRepository   EntryRepository
	SnippetRepository SnippetRepository
	TagRepository     TagRepository
}

// NewRepositories constructs all repositories backed by db.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(db, log),
		EntryRepository:   NewEntryRepository(db, log),
		SnippetRepository: NewSnippetRepository(db, log),
		TagRepository:     NewTagRepository(db, log),
	}
}
