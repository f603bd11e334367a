package main

import "github.com/sleekhr/employee-directory/cmd"

func main() {
	cmd.Execute()
}
