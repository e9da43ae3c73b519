// Package web bundles the browser-side assets served under /static.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
