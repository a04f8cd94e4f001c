// Package version provides application version information.
// The version can be set at build time using ldflags:
//
//	go build -ldflags "-X github.com/Silonidas/card-verse-architect/internal/version.Version=v0.2.0" ./cmd/cardverse
package version

import "runtime"

// Version is the application version. It defaults to "dev" and can be
// overridden at build time using ldflags.
var Version = "dev"

// String returns the version line printed by "cardverse version".
func String(app string) string {
	return app + " version " + Version + " (" + runtime.Version() + ")"
}
