package main

import (
	signupcmd "github.com/initializ/signup/cmd"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	signupcmd.SetVersionInfo(version, commit)
	signupcmd.Execute()
}
