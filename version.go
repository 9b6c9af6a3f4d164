package main

// Build-time variable, set via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0"
var version = "1.0.0"
