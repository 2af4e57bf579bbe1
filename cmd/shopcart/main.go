package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		log.Printf("shopcart: %v", err)
		os.Exit(1)
	}
}
