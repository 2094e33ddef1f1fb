// Command portfolio serves the portfolio site, builds a static copy of it, and
// scaffolds its content file.
package main

//go:generate go run . wasm --pkg ../portfolio-wasm --assets ../../assets

import (
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	Execute()
}
