package store

import (
	"github.com/jurnalresonansi/resonansi-api/internal/logger"
)

// Repositories aggregates all persistence repositories behind their
// interfaces. Constructed once at startup and injected into the
// service layer.
type Repositories struct {
	Users     UserRepository
	Posts     PostRepository
	Comments  CommentRepository
	Downloads DownloadRepository
}

// NewRepositories constructs every repository backed by the given
// database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db, logger),
		Posts:     NewPostRepository(db, logger),
		Comments:  NewCommentRepository(db, logger),
		Downloads: NewDownloadRepository(db, logger),
	}
}
