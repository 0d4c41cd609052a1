package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/mdpage/core/locate/resources"
	nethtml "golang.org/x/net/html"
)

// missingAssets scans a rendered post for local image and video sources
// and reports every one which does not exist below root. Sources with a
// scheme and fragment-only references are skipped.
func missingAssets(post string, root string) []error {
	var missing []error
	seen := make(map[string]bool)
	z := nethtml.NewTokenizer(strings.NewReader(post))
	for {
		switch z.Next() {
		case nethtml.ErrorToken:
			return missing
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			for _, a := range z.Token().Attr {
				if a.Key != "src" && a.Key != "srcset" && a.Key != "poster" {
					continue
				}
				if !isLocal(a.Val) || seen[a.Val] {
					continue
				}
				seen[a.Val] = true
				name := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(a.Val, "/")))
				if _, err := os.Stat(name); err != nil {
					tracer().Debugf("asset %s: %v", name, err)
					kind, _ := resources.MediaType(a.Val)
					missing = append(missing, resources.NotFound(a.Val, kind))
				}
			}
		}
	}
}

func isLocal(src string) bool {
	return src != "" && (strings.HasPrefix(src, "/") || resources.IsRelative(src))
}
