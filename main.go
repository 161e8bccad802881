package main

import "editbox/internal/cli"

func main() {
	cli.Execute()
}
