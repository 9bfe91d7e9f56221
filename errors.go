package easel

import "errors"

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers branch with errors.Is.
var (
	// ErrStartup reports that the rendering system could not be constructed,
	// for example because the resource folder was not found. There is no
	// recovery; callers are expected to abort.
	ErrStartup = errors.New("easel: startup failed")

	// ErrResourceLoad reports that an image path resolved to no valid data.
	ErrResourceLoad = errors.New("easel: resource could not be loaded")

	// ErrConfig reports an invalid configuration value such as a frame rate
	// below one.
	ErrConfig = errors.New("easel: invalid configuration")
)
