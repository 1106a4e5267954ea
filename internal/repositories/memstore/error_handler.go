package memstore

import (
	"errors"

	"github.com/workpent/shortlink/internal/db/memory"
	"github.com/workpent/shortlink/internal/repositories"
)

// convertErrorType конвертирует специфичные ошибки хранилища в памяти
// в общие ошибки уровня репозитория.
//
// Преобразования ошибок:
//   - memory.ErrDuplicateKey -> repositories.ErrDuplicateKey
//   - memory.ErrNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
func convertErrorType(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, memory.ErrDuplicateKey):
		return repositories.ErrDuplicateKey
	case errors.Is(err, memory.ErrNotFound):
		return repositories.ErrNotFound
	default:
		return repositories.ErrUnknown
	}
}
