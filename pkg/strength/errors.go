package strength

import "errors"

var (
	// ErrEstimation is returned when the active scoring strategy fails
	// internally. It indicates a broken scoring engine, not invalid input,
	// so callers should report it rather than retry.
	ErrEstimation = errors.New("strength estimation failed")
)
