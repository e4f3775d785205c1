package main

import "github.com/calebcase/numeral/internal/cli"

func main() {
	cli.Execute()
}
