package logging

// Standardized structured logging keys shared across reelcat components.
const (
	// FieldComponent is the structured logging key for component names.
	FieldComponent = "component"
	// FieldOperationID is the structured logging key for per-mutation
	// correlation identifiers.
	FieldOperationID = "operation_id"
	// FieldVideoID is the structured logging key for video identifiers.
	FieldVideoID = "video_id"
	// FieldAuthorID is the structured logging key for author identifiers.
	FieldAuthorID = "author_id"
	// FieldFromAuthorID identifies the author a video is being moved away
	// from during reassignment.
	FieldFromAuthorID = "from_author_id"
	// FieldToAuthorID identifies the author receiving a video during
	// reassignment.
	FieldToAuthorID = "to_author_id"
)
