package main

// Set with -ldflags "-X main.version=..." at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	Execute(version, commit, date)
}
