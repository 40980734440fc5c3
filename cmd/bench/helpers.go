package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/fulldump/ddrmem/bootstrap"
	"github.com/fulldump/ddrmem/configuration"
)

type JSON = map[string]any

var client = &http.Client{
	Transport: &http.Transport{
		MaxConnsPerHost:     1024,
		MaxIdleConnsPerHost: 1024,
		MaxIdleConns:        1024,
	},
	Timeout: 10 * time.Second,
}

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

// Post sends a JSON body and decodes the JSON answer into out (if not nil).
func Post(url string, body any, out any) (int, error) {

	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	return resp.StatusCode, json.NewDecoder(resp.Body).Decode(out)
}

// CreateWindow creates a window big enough for n blocks of size bytes.
func CreateWindow(base string, n int64, size uint64, strict bool) string {

	name := "bench-" + strconv.FormatInt(time.Now().UnixNano(), 10)

	perBlock := size
	if strict {
		perBlock = 0x02000000
	}

	status, err := Post(base+"/v1/windows", JSON{
		"name":  name,
		"base":  0,
		"total": uint64(n) * perBlock,
	}, nil)
	if err != nil {
		panic(err)
	}
	if status != http.StatusCreated {
		panic(fmt.Sprintf("create window: unexpected status %d", status))
	}

	return name
}

func CreateServer(c *Config) (start, stop func()) {

	conf := configuration.Default()
	conf.HttpAddr = "127.0.0.1:8099"
	conf.ShowBanner = false
	c.Base = "http://" + conf.HttpAddr

	return bootstrap.Bootstrap(conf)
}

func WaitReady(base string) {
	for i := 0; i < 100; i++ {
		resp, err := client.Get(base + "/v1/windows")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	panic("server not ready")
}
