package main

import "tender-dapp/internal/cli"

func main() {
	cli.Execute()
}
