package main

import "github.com/shantanu-hashcash/soroban-tools/internal/cli"

func main() {
	cli.Execute()
}
