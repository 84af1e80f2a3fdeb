// Package internal contains the runtime behind the choreo platform: the run
// loop that acts as the main scheduling context, the animator that
// interpolates view changes each frame, timing curves, configuration and
// logging. Types and functions in this package are not part of the public API.
package internal
