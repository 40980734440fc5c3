package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance exercises the HTTP API of a fresh session that already has a
// window named "ddr" at 0x10000000 with 256 MiB.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("List windows", func(a *biff.A) {
		resp := apiRequest("GET", "/windows").Do()
		Save(resp, "List windows", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJson().([]interface{})
		biff.AssertEqual(len(body), 1)
		window := body[0].(JSON)
		biff.AssertEqual(window["name"], "ddr")
		biff.AssertEqual(window["base"], json.Number("268435456"))
		biff.AssertEqual(window["available"], json.Number("268435456"))
	})

	a.Alternative("Create window", func(a *biff.A) {
		resp := apiRequest("POST", "/windows").
			WithBodyJson(JSON{
				"name":  "aux",
				"base":  0,
				"total": 1024,
			}).Do()
		Save(resp, "Create window", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		body := resp.BodyJsonMap()
		biff.AssertEqual(body["name"], "aux")
		biff.AssertEqual(body["total"], json.Number("1024"))
		biff.AssertEqual(body["max_free_run"], json.Number("1024"))

		a.Alternative("Create duplicated window", func(a *biff.A) {
			resp := apiRequest("POST", "/windows").
				WithBodyJson(JSON{"name": "aux", "base": 0, "total": 1024}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("Drop window", func(a *biff.A) {
			resp := apiRequest("POST", "/windows/aux:drop").Do()
			Save(resp, "Drop window", ``)
			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			resp = apiRequest("GET", "/windows/aux").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})
	})

	a.Alternative("Create misaligned window", func(a *biff.A) {
		resp := apiRequest("POST", "/windows").
			WithBodyJson(JSON{"name": "bad", "base": 3, "total": 1024}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Create window without name", func(a *biff.A) {
		resp := apiRequest("POST", "/windows").
			WithBodyJson(JSON{"base": 0, "total": 1024}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Get missing window", func(a *biff.A) {
		resp := apiRequest("GET", "/windows/sram").Do()
		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		biff.AssertEqual(resp.BodyJsonMap()["error"].(JSON)["description"], "Not found")
	})

	a.Alternative("Allocate zero bytes", func(a *biff.A) {
		resp := apiRequest("POST", "/windows/ddr:allocate").
			WithBodyJson(JSON{"size": 0}).Do()
		Save(resp, "Allocate - invalid size", ``)
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Allocate more than the window", func(a *biff.A) {
		resp := apiRequest("POST", "/windows/ddr:allocate").
			WithBodyJson(JSON{"size": 512 * 1024 * 1024}).Do()
		Save(resp, "Allocate - out of space", ``)
		biff.AssertEqual(resp.StatusCode, http.StatusInsufficientStorage)
	})

	a.Alternative("Free unknown address", func(a *biff.A) {
		resp := apiRequest("POST", "/windows/ddr:free").
			WithBodyJson(JSON{"address": 12345}).Do()
		Save(resp, "Free - not found", ``)
		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})

	a.Alternative("Allocate strict", func(a *biff.A) {
		resp := apiRequest("POST", "/windows/ddr:allocate").
			WithBodyJson(JSON{
				"size":   10,
				"strict": true,
				"label":  "iq",
			}).Do()
		Save(resp, "Allocate", `
			Reserve 10 bytes aligned for peer to peer transfers. The size is
			rounded up to 8 bytes.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		first := resp.BodyJsonMap()
		biff.AssertEqual(first["address"], json.Number("268435456"))
		biff.AssertEqual(first["size"], json.Number("16"))
		biff.AssertEqual(first["end"], json.Number("268435471"))
		biff.AssertEqual(first["strict"], true)
		biff.AssertEqual(first["label"], "iq")

		a.Alternative("Allocate second strict block", func(a *biff.A) {
			resp := apiRequest("POST", "/windows/ddr:allocate").
				WithBodyJson(JSON{"size": 100000, "strict": true, "label": "waveform"}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			biff.AssertEqual(resp.BodyJsonMap()["address"], json.Number("301989888"))

			a.Alternative("Find all", func(a *biff.A) {
				resp := apiRequest("POST", "/windows/ddr:find").Do()
				Save(resp, "Find - all", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				labels := []string{}
				dec := json.NewDecoder(strings.NewReader(resp.BodyString()))
				for dec.More() {
					row := JSON{}
					biff.AssertNil(dec.Decode(&row))
					labels = append(labels, row["label"].(string))
				}
				biff.AssertEqual(labels, []string{"iq", "waveform"})
			})

			a.Alternative("Find with filter", func(a *biff.A) {
				resp := apiRequest("POST", "/windows/ddr:find").
					WithBodyJson(JSON{
						"filter": JSON{"label": "waveform"},
					}).Do()
				Save(resp, "Find - filter", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				row := JSON{}
				biff.AssertNil(json.Unmarshal(resp.BodyBytes(), &row))
				biff.AssertEqual(row["address"], float64(301989888))
			})

			a.Alternative("Find with skip and limit", func(a *biff.A) {
				resp := apiRequest("POST", "/windows/ddr:find").
					WithBodyJson(JSON{"skip": 1, "limit": 1}).Do()

				row := JSON{}
				biff.AssertNil(json.Unmarshal(resp.BodyBytes(), &row))
				biff.AssertEqual(row["label"], "waveform")
			})

			a.Alternative("Dump", func(a *biff.A) {
				resp := apiRequest("GET", "/windows/ddr/dump").Do()
				Save(resp, "Dump", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyString(), ""+
					"===================================================\n"+
					"10000000 (268435456) - 1000000F (268435471) (16 bytes); isAligned = true\n"+
					"12000000 (301989888) - 1201869F (302089887) (100000 bytes); isAligned = true\n"+
					"Available memory: 268335440 bytes; Max Block: 234781024 bytes\n"+
					"===================================================\n"+
					"\n")
			})

			a.Alternative("Window stats", func(a *biff.A) {
				resp := apiRequest("GET", "/windows/ddr").Do()
				Save(resp, "Window stats", ``)

				body := resp.BodyJsonMap()
				biff.AssertEqual(body["blocks"], json.Number("2"))
				biff.AssertEqual(body["available"], json.Number("268335440"))
				biff.AssertEqual(body["max_free_run"], json.Number("234781024"))
			})
		})

		a.Alternative("Free", func(a *biff.A) {
			resp := apiRequest("POST", "/windows/ddr:free").
				WithBodyJson(JSON{"address": 268435456}).Do()
			Save(resp, "Free", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqual(resp.BodyJsonMap()["id"], first["id"])

			resp = apiRequest("GET", "/windows/ddr").Do()
			biff.AssertEqual(resp.BodyJsonMap()["available"], json.Number("268435456"))
		})

		a.Alternative("Drop busy window", func(a *biff.A) {
			resp := apiRequest("POST", "/windows/ddr:drop").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusConflict)

			resp = apiRequest("POST", "/windows/ddr:drop").
				WithQuery("force", "true").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
		})
	})
}
