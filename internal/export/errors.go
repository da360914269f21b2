package export

import "errors"

var (
	// ErrInputUnavailable is returned when the address list is missing or unreadable.
	// Callers treat it as an empty run.
	ErrInputUnavailable = errors.New("address list unavailable")

	// ErrNoInput marks a run that had no address left after normalization.
	ErrNoInput = errors.New("no addresses to export")

	// ErrStoreUnavailable is returned by record sources when the store cannot be reached.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrQueryFailed is returned by record sources when a query or its decoding fails.
	ErrQueryFailed = errors.New("record query failed")

	// ErrInvalidHash is returned by enrichers for an empty transaction hash.
	ErrInvalidHash = errors.New("invalid transaction hash")

	// ErrProviderUnreachable is returned when the decoding provider cannot be reached.
	ErrProviderUnreachable = errors.New("decoding provider unreachable")

	// ErrProviderError is returned when the decoding provider answers with a failure.
	ErrProviderError = errors.New("decoding provider error")

	// ErrMalformedPayload is returned when a decoding payload is not valid JSON.
	ErrMalformedPayload = errors.New("malformed decoding payload")

	// ErrEnrichmentFailed marks a transaction whose decoding failed.
	ErrEnrichmentFailed = errors.New("enrichment failed")

	// ErrPersistFailed is returned by sinks when an address result could not be stored.
	ErrPersistFailed = errors.New("persist failed")

	// ErrForeignRecord marks a fetched record whose sender is not the queried address.
	ErrForeignRecord = errors.New("record does not belong to address")
)
