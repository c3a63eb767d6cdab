package service

import (
	"github.com/jurnalresonansi/resonansi-api/internal/adapter"
	"github.com/jurnalresonansi/resonansi-api/internal/blob"
	"github.com/jurnalresonansi/resonansi-api/internal/config"
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
	"github.com/jurnalresonansi/resonansi-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	PostService     PostService
	CommentService  CommentService
	DownloadService DownloadService
}

func NewServices(repositories *store.Repositories, blobStore blob.Store, google adapter.GoogleProvider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.Users, google, cfg.Auth, logger),
		UserService:     NewUserService(repositories.Users, logger),
		PostService:     NewPostService(repositories.Posts, repositories.Users, logger),
		CommentService:  NewCommentService(repositories.Comments, repositories.Posts, logger),
		DownloadService: NewDownloadService(repositories.Downloads, blobStore, logger),
	}
}
