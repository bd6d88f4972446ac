package main

import "github.com/mouse-blink/keytrim/cmd"

func main() {
	cmd.Execute()
}
