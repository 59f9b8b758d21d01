package main

import "herobanner/internal/cli"

func main() {
	cli.Execute()
}
