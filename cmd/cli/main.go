package main

import "iostream/cmd/cli/app/cmd"

func main() {
	cmd.Execute()
}
