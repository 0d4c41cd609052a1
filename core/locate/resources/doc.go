/*
Package resources resolves asset references of posts.

Posts reference images and videos relative to the directory they live in.
Functions in this package turn such references into paths usable by a
browser, and infer media types from file names.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'mdpage.resources'.
func tracer() tracing.Trace {
	return tracing.Select("mdpage.resources")
}
