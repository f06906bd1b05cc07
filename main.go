package main

import "github.com/warden-sh/warden-cli/cmd"

func main() {
	cmd.Execute()
}
