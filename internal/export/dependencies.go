package export

import "context"

// RecordSource provides the transactions sent by an address.
//
// Implementations receive addresses already normalized by the caller and must
// not retry internally; the retry policy belongs to the Service.
type RecordSource interface {
	// Count returns the number of transactions sent by address, capped at limit.
	//
	// Returns an error wrapping ErrStoreUnavailable or ErrQueryFailed on failure.
	Count(ctx context.Context, address string, limit int) (int, error)

	// Fetch returns at most limit transactions sent by address. The order is
	// deterministic for a given store state.
	//
	// Returns an error wrapping ErrStoreUnavailable or ErrQueryFailed on failure.
	Fetch(ctx context.Context, address string, limit int) ([]TransactionRecord, error)
}

// Enricher decodes a transaction through an external provider.
type Enricher interface {
	// Decode returns the decoded input and receipt logs of the transaction
	// identified by hash. Both lookups must succeed; no partial result is
	// returned on failure.
	//
	// Returns an error wrapping ErrInvalidHash, ErrProviderUnreachable,
	// ErrProviderError or ErrMalformedPayload.
	Decode(ctx context.Context, hash string) (DecodedTransaction, error)
}

// Sink stores finalized address results.
type Sink interface {
	// Persist durably writes one artifact for result, keyed by its address.
	// Either the whole result is stored or an error wrapping ErrPersistFailed is
	// returned and any previous artifact for the address is left untouched.
	Persist(ctx context.Context, result AddressResult) error
}
