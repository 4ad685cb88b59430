package main

import "os"

func main() {
	os.Exit(Execute(newApp(), os.Args[1:]))
}
