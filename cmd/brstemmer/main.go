package main

import "brstemmer/internal/cli"

func main() {
	cli.Execute()
}
