package mimedetector_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"

	"github.com/woopygit/mimedetector"
)

func ExampleDetector_GetMIME() {
	dir, _ := os.MkdirTemp("", "mimedetector")
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "README.md")
	_ = os.WriteFile(path, []byte("# hello"), 0644)

	d := mimedetector.New()
	mimeType, ok := d.GetMIME(context.Background(), path)
	fmt.Println(mimeType, ok)

	_, ok = d.GetMIME(context.Background(), "nonexistent/file.pdf")
	fmt.Println(ok)
	// Output:
	// text/markdown true
	// false
}

func ExampleDetector_ResolveRemote() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}))
	defer srv.Close()

	d := mimedetector.New(mimedetector.WithHeader("User-Agent", "example/1.0"))
	mimeType, ok := d.ResolveRemote(context.Background(), srv.URL+"/index.html")
	fmt.Println(mimeType, ok)
	// Output:
	// text/html; charset=utf-8 true
}

func ExampleDetector_CheckFileLocation() {
	d := mimedetector.New()

	fmt.Println(d.CheckFileLocation("https://example.com/file.pdf"))
	fmt.Println(d.CheckFileLocation("example.com/file.pdf") == mimedetector.LocationInvalid)
	// Output:
	// remote
	// true
}

func ExampleTable_With() {
	table := mimedetector.DefaultTable().With(map[string]string{
		".ipynb": "application/x-ipynb+json",
	})

	mimeType, _ := table.LookupPath("analysis.ipynb")
	fmt.Println(mimeType)
	// Output:
	// application/x-ipynb+json
}
