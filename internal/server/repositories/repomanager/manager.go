package repomanager

import (
	"context"
	"database/sql"

	"github.com/mpetrenko/brandsync/internal/dbx"
	"github.com/mpetrenko/brandsync/internal/server/repositories/fields"
	"github.com/mpetrenko/brandsync/internal/server/repositories/refreshtokens"
	"github.com/mpetrenko/brandsync/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Fields(db dbx.DBTX) fields.Repository
}
