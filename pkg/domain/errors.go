package domain

// ShortCodeRegenerationCause names the rule that blocked a short-code
// regeneration. The two causes are distinct so callers can present distinct
// messages.
type ShortCodeRegenerationCause string

const (
	// CauseCustomSlug means a custom slug was supplied at creation and the
	// short URL did not originate from an import; caller-chosen slugs are
	// permanent.
	CauseCustomSlug ShortCodeRegenerationCause = "CUSTOM_SLUG"
	// CauseAlreadyPersisted means the short URL already has a persisted
	// identity; codes are frozen on first persistence.
	CauseAlreadyPersisted ShortCodeRegenerationCause = "ALREADY_PERSISTED"
)

// ShortCodeCannotBeRegeneratedError is returned by
// ShortURL.RegenerateShortCode when one of the regeneration rules is
// violated. It is recoverable: callers typically surface it as a 4xx-class
// failure.
type ShortCodeCannotBeRegeneratedError struct {
	// Cause identifies which rule triggered the failure.
	Cause ShortCodeRegenerationCause
}

func (e *ShortCodeCannotBeRegeneratedError) Error() string {
	switch e.Cause {
	case CauseCustomSlug:
		return "short code cannot be regenerated: a custom slug was provided at creation"
	case CauseAlreadyPersisted:
		return "short code cannot be regenerated: the short URL is already persisted"
	default:
		return "short code cannot be regenerated"
	}
}
