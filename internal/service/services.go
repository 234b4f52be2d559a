package service

import (
	"devjournal/internal/ai"
	"devjournal/internal/logger"
	"devjournal/internal/store"
)

type Services struct {
	IdentityService IdentityService
	EntryService    EntryService
	SnippetService  SnippetService
	TagService      TagService
}

func NewServices(repos *store.Repositories, summarizer ai.Summarizer, logger *logger.Logger) *Services {
	return &Services{
		IdentityService: NewIdentityService(repos.UserRepository, logger),
		EntryService:    NewEntryService(repos.EntryRepository, repos.SnippetRepository, repos.TagRepository, summarizer, logger),
		SnippetService:  NewSnippetService(repos.SnippetRepository, repos.EntryRepository, logger),
		TagService:      NewTagService(repos.TagRepository, repos.EntryRepository, repos.SnippetRepository, logger),
	}
}
