package mhcwrap

// Version is the release of the wrapper reported by `mhcwrap version`.
var Version = "0.3.0"
