package main

import "github.com/jsphweid/mid2text/cmd"

func main() {
	cmd.Execute()
}
