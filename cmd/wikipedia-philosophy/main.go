// Package main provides the entry point for the wikipedia-philosophy CLI.
//
// wikipedia-philosophy follows the first qualifying link of each Wikipedia
// article until the walk reaches Philosophy, loops back to a visited
// article, or runs out of links to follow.
//
// Usage:
//
//	wikipedia-philosophy trace "Rubber duck"
//	wikipedia-philosophy trace --random --runs 10
//
// See --help for all available options.
package main

import "github.com/joho/godotenv"

// main is the entry point for wikipedia-philosophy.
func main() {
	// A missing .env file is fine; settings may come from the real
	// environment or the config file instead.
	_ = godotenv.Load()

	Execute()
}
