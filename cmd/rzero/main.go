package main

import "github.com/arloliu/rzero/internal/cli"

func main() {
	cli.Execute()
}
