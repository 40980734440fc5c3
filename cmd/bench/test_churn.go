package main

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// TestChurn keeps every worker allocating and freeing so the window gets
// fragmented and first fit has to walk past reclaimed gaps.
func TestChurn(c Config) {

	window := CreateWindow(c.Base, int64(c.Workers)*4, c.Size, c.Strict)
	url := c.Base + "/v1/windows/" + window

	var operations, outOfSpace int64
	items := c.N

	t0 := time.Now()
	Parallel(c.Workers, func() {
		held := []uint64{}
		for atomic.AddInt64(&items, -1) >= 0 {
			if len(held) >= 3 {
				Post(url+":free", JSON{"address": held[0]}, nil)
				held = held[1:]
				atomic.AddInt64(&operations, 1)
			}
			reservation := struct {
				Address uint64 `json:"address"`
			}{}
			status, err := Post(url+":allocate", JSON{"size": c.Size, "strict": c.Strict}, &reservation)
			atomic.AddInt64(&operations, 1)
			if err != nil {
				fmt.Println("ERROR: allocate:", err)
				return
			}
			if status == http.StatusInsufficientStorage {
				atomic.AddInt64(&outOfSpace, 1)
				continue
			}
			held = append(held, reservation.Address)
		}
		for _, address := range held {
			Post(url+":free", JSON{"address": address}, nil)
		}
	})

	took := time.Since(t0)
	fmt.Println("operations:", operations)
	fmt.Println("out of space:", outOfSpace)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f ops/sec\n", float64(operations)/took.Seconds())
}
