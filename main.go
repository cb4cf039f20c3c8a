package main

import "github.com/jackchuka/toasts/cmd"

func main() {
	cmd.Execute()
}
