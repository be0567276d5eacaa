package service

import (
	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/crypto"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/store"
)

type Services struct {
	AccountService AccountService
	FeedService    FeedService
	SessionService SessionService
}

func NewServices(repositories *store.Repositories, hasher crypto.Hasher, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AccountService: NewAccountService(repositories.UserRepository, hasher, logger),
		FeedService:    NewFeedService(repositories.MessageRepository, cfg.App.FeedPageSize, logger),
		SessionService: NewSessionService(repositories.SessionRepository, repositories.UserRepository, cfg.App, logger),
	}
}
