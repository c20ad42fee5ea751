package main

import "github.com/mouse-blink/cesty/cmd"

func main() {
	cmd.Execute()
}
