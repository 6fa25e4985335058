package usecase

import "errors"

// Error taxonomy surfaced to the delivery layer. Handlers map these onto
// HTTP statuses; upstream causes stay wrapped underneath and are never
// shown to the client.
var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate entry")
	ErrUpstreamGeneration = errors.New("generation service failed")
	ErrUpstreamSearch     = errors.New("search service failed")
	ErrRender             = errors.New("document rendering failed")
	ErrInternal           = errors.New("internal error")
)
