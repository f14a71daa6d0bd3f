package version

// Name for this
const Name string = "notedeck"

// Version for this
var Version = "0.1.0"

// Revision for this (set by ldflags)
var Revision = "HEAD"
