package upload

import "sendyourfiles/internal/core/domain"

// NeedsExternalHost reports whether file is too big for the chat platform itself.
// A file exactly at the threshold is still uploaded directly.
func NeedsExternalHost(file domain.UploadableFile, baseThreshold int64) bool {
	return file.Size > baseThreshold
}

// ExceedsHostCeiling reports whether file is too big for host
func ExceedsHostCeiling(file domain.UploadableFile, host domain.HostID) bool {
	limit, ok := host.Ceiling()
	return ok && file.Size > limit
}
