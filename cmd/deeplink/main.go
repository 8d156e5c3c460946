package main

import "github.com/hitekdb/deeplink/cmd/deeplink/cmd"

func main() {
	cmd.Execute()
}
