package main

import (
	"caveconv/cli"
)

func main() {
	cli.Start()
}
