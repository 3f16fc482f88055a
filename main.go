package main

import "github.com/photoid/passport-crop/cmd"

func main() {
	cmd.Execute()
}
