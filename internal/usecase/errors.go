package usecase

// Jenis error domain yang dipetakan handler ke status HTTP.
// Error lain (storage dsb) dianggap internal dan diteruskan apa adanya.

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

type QuotaExceededError struct {
	Msg string
}

func (e *QuotaExceededError) Error() string { return e.Msg }
