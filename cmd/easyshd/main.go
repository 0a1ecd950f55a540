package main

import (
	"log"

	"github.com/easysh/easysh/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
