package impl

import (
	"context"
	"io"
	"log/slog"

	"verifiedtutors/config"
	"verifiedtutors/internal/domain/repository"
	mockRepo "verifiedtutors/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "https://verifiedtutors.lk"

	return cfg
}

// expectTx routes the transactional callback straight to the given
// factory, standing in for a real database transaction.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
