package main

import "github/chapool/go-rixsdk/cmd"

func main() {
	cmd.Execute()
}
