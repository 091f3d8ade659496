package errs

// Sentinel errors shared across usecase and handler layers
var (
	// Order errors
	ErrOrderNotFound = New("order not found")
	ErrPersistence   = New("order persistence failed")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Feature errors
	ErrFeatureDisabled = New("feature disabled")
)
