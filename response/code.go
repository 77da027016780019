package response

// ErrorKind classifies a handler failure for status mapping.
type ErrorKind int

const (
	// NotFound is only produced by the delete-by-id lookup.
	NotFound ErrorKind = iota + 1

	// Upstream covers any collaborator failure: database, media store,
	// template rendering, SMTP. Nothing is distinguished further; a
	// validation error and a network timeout answer the same way.
	Upstream
)
