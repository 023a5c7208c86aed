package apperr

type Kind string

type AppError struct {
	Kind      Kind
	PublicMsg string // safe to show to the visitor
	Err       error  // internal cause, for logs only
}
