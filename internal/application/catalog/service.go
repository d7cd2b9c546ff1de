package catalog

import (
	"errors"
	"fmt"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/trace"
)

// AddressProvider returns the "host/ip:port" identity of this instance
type AddressProvider interface {
	Address() string
}

// duplicateKeyError turns a repository duplicate-key error into InvalidInput.
// key is appended to "Duplicate key, " verbatim.
func duplicateKeyError(err error, key string) error {
	if errors.Is(err, shared.ErrDuplicateKey) {
		return shared.NewInvalidInputError("Duplicate key, %s", key)
	}
	return err
}

// endSpan records err, if any, on span and ends it
func endSpan(span trace.Span, err error) {
	telemetry.RecordError(span, err)
	span.End()
}

func productKey(productID int) string {
	return fmt.Sprintf("Product Id: %d", productID)
}
