package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save writes the request/response of an acceptance step as a markdown API
// example into $API_EXAMPLES_PATH. It does nothing when the variable is unset.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}

	s := &strings.Builder{}

	fmt.Fprintf(s, "# %s\n", title)
	s.WriteString(cropTabs(description) + "\n")

	// curl
	s.WriteString("Curl example:\n\n```sh\ncurl ")
	if request.Method != "GET" {
		s.WriteString("-X " + request.Method + " ")
	}
	fmt.Fprintf(s, "\"https://example.com%s%s\"", request.URL.Path, query)
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			fmt.Fprintf(s, " \\\n-H \"%s: %s\"", k, v)
		}
	}
	requestBody := formatBody(response.BodyRequestString())
	if requestBody != "" {
		fmt.Fprintf(s, " \\\n-d '%s'", requestBody)
	}
	s.WriteString("\n```\n\n\n")

	// raw http
	s.WriteString("HTTP request/response example:\n\n```http\n")
	fmt.Fprintf(s, "%s %s%s %s\n", request.Method, request.URL.Path, query, request.Proto)
	s.WriteString("Host: example.com\n")
	for _, k := range sortedKeys(request.Header) {
		for _, v := range request.Header[k] {
			fmt.Fprintf(s, "%s: %s\n", k, v)
		}
	}
	s.WriteString("\n" + requestBody + "\n\n")

	fmt.Fprintf(s, "%s %s\n", response.Proto, response.Status)
	for _, k := range sortedKeys(response.Header) {
		if k == "Date" {
			s.WriteString("Date: Mon, 19 Oct 2026 10:00:00 GMT\n")
			continue
		}
		for _, v := range response.Header[k] {
			fmt.Fprintf(s, "%s: %s\n", k, v)
		}
	}
	s.WriteString("\n" + formatBody(response.BodyString()) + "\n```\n\n\n")

	filename := strings.ReplaceAll(strings.ToLower(title), " ", "_") + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	fmt.Println("Saving", p)
	err := os.WriteFile(p, []byte(s.String()), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func sortedKeys(h map[string][]string) []string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// formatBody indents JSON bodies and leaves anything else untouched.
func formatBody(body string) string {

	var i interface{}
	if err := json.Unmarshal([]byte(body), &i); err != nil {
		return body
	}

	b, err := json.MarshalIndent(i, "", "    ")
	if err != nil {
		return body
	}

	return string(b)
}

// cropTabs removes the common tab indentation of a backtick description.
func cropTabs(d string) string {

	lines := strings.Split(d, "\n")

	body := lines
	if len(lines) > 2 {
		body = lines[1 : len(lines)-1]
	}

	minTabs := -1
	for _, line := range body {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, "\t"))
		if minTabs < 0 || n < minTabs {
			minTabs = n
		}
	}
	if minTabs <= 0 {
		return d
	}

	prefix := strings.Repeat("\t", minTabs)
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}
