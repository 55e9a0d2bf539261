package unitofwork

import "context"

// RepositoryFactory hands out one short-lived UnitOfWork per request or
// per worker pass.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
