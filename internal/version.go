package internal

// Version is the current wymowa release.
const Version = "0.3.0"
