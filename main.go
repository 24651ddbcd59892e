package main

import "github.com/terrapkg/appstream-helper/cmd"

func main() {
	cmd.Execute()
}
