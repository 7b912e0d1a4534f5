package unitofwork

import (
	"context"

	"vilaw-chatbot-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	LawDocumentRepository() contract.LawDocumentRepository
	SystemLogRepository() contract.SystemLogRepository
}
