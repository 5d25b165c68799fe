package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/midbel/jsx/ast"
)

func readDocument(file string) (ast.Node, error) {
	if file == "" {
		return nil, fmt.Errorf("document expected")
	}
	r, err := openFile(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return ast.NewReader(r).Read()
}

func writeDocument(node ast.Node, file string, compact bool) error {
	if node == nil {
		return fmt.Errorf("no document to be written")
	}
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	ws := ast.NewWriter(w)
	ws.Compact = compact
	return ws.Write(node)
}

func openFile(file string) (io.ReadCloser, error) {
	u, err := url.Parse(file)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("accept", "application/json")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != 200 {
			return nil, fmt.Errorf("fail to retrieve remote file")
		}
		return res.Body, nil
	default:
		return os.Open(file)
	}
}

// elementName maps the command line name filter to the search
// wildcard: * and the empty string match everything.
func elementName(name string) string {
	if name == "*" {
		return ""
	}
	return name
}
