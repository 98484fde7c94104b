package main

import "sleuthbot/cmd/sleuthbot/cli"

func main() {
	cli.Execute()
}
