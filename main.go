package main

import "pss-assistant/cmd"

func main() {
	cmd.Execute()
}
