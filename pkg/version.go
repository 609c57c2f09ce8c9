package mindlog

// Version is the current mindlog release.
const Version = "0.1.0"
