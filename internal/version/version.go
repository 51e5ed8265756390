package version

// Version is stamped at release time (go build -ldflags "-X ...").
var Version = "0.3.0-dev"
