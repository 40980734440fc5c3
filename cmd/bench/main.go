package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | ALLOC | CHURN"`
	Base    string `usage:"base URL, empty to start an embedded server"`
	N       int64  `usage:"number of allocations"`
	Workers int    `usage:"number of workers"`
	Size    uint64 `usage:"bytes per allocation"`
	Strict  bool   `usage:"request peer to peer alignment"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "churn",
		Base:    "",
		N:       100_000,
		Workers: 16,
		Size:    4096,
	}
	goconfig.Read(&c)

	if c.Base == "" {
		start, stop := CreateServer(&c)
		cleanups = append(cleanups, stop)
		go start()
		WaitReady(c.Base)
	}

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestAlloc(c)
		TestChurn(c)
	case "ALLOC":
		TestAlloc(c)
	case "CHURN":
		TestChurn(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
