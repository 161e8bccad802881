package version

// AppVersion is overridden at build time with
// -ldflags "-X editbox/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
