package main

import (
	"fmt"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// TestAlloc fills a window with N blocks and then frees all of them.
func TestAlloc(c Config) {

	window := CreateWindow(c.Base, c.N, c.Size, c.Strict)
	url := c.Base + "/v1/windows/" + window

	items := c.N
	addresses := make(chan uint64, c.N)

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&items, -1) >= 0 {
			reservation := struct {
				Address uint64 `json:"address"`
			}{}
			status, err := Post(url+":allocate", JSON{"size": c.Size, "strict": c.Strict, "label": "bench"}, &reservation)
			if err != nil || status != http.StatusCreated {
				fmt.Println("ERROR: allocate:", status, err)
				os.Exit(3)
			}
			addresses <- reservation.Address
		}
	})
	close(addresses)
	took := time.Since(t0)
	fmt.Println("allocated:", c.N)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f allocations/sec\n", float64(c.N)/took.Seconds())

	mutex := &sync.Mutex{}
	t0 = time.Now()
	Parallel(c.Workers, func() {
		for address := range addresses {
			status, err := Post(url+":free", JSON{"address": address}, nil)
			if err != nil || status != http.StatusOK {
				mutex.Lock()
				fmt.Println("ERROR: free:", address, status, err)
				mutex.Unlock()
			}
		}
	})
	took = time.Since(t0)
	fmt.Println("freed:", c.N)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f frees/sec\n", float64(c.N)/took.Seconds())
}
