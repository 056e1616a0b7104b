package driven

import "context"

// InstallMarker records that the service has completed its first start.
type InstallMarker interface {
	// MarkInstalled sets the marker and reports whether this call set it,
	// which is true exactly once per storage.
	MarkInstalled(ctx context.Context) (first bool, err error)
}
