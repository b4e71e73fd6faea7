package main

import "github.com/oshokin/adhan-alarm/cmd/adhanctl/cmd"

func main() {
	cmd.Execute()
}
