package unitofwork

import (
	"context"
)

// RepositoryFactory creates units of work bound to a context
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
