package predict

import "errors"

// Standard errors for model artifact operations
var (
	// ErrModelUnavailable is returned when a prediction needs a model artifact that failed to load
	ErrModelUnavailable = errors.New("model artifact unavailable")

	// ErrUnknownCategory is returned when a categorical value is missing from the frozen codebook
	ErrUnknownCategory = errors.New("category not present in model codebook")

	// ErrInvalidManifest is returned when a model manifest is malformed
	ErrInvalidManifest = errors.New("invalid model manifest")
)
