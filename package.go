// Package regionedit scans text files for delimited editable regions
// and reads or mutates the content strictly inside them, leaving
// everything outside the markers untouched.
//
// Regions are delimited by Dreamweaver-style marker comments, each on
// its own line:
//
//	<!-- #BeginEditable "header" -->
//	...editable content...
//	<!-- #EndEditable -->
//
// Regions never nest. Every operation re-scans the file, so region
// positions are always derived from the file's current state rather
// than a cache.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "os"
//
//	    "github.com/regionedit/regionedit"
//	)
//
//	func main() {
//	    engine := regionedit.New(
//	        regionedit.WithLogger(regionedit.NewWriterLogger(os.Stderr)),
//	    )
//
//	    regions, err := engine.Regions("index.html")
//	    if err != nil {
//	        // Structural error: nested, mismatched, or unterminated markers.
//	        panic(err)
//	    }
//	    for _, r := range regions {
//	        fmt.Printf("%s: lines %d-%d\n", r.Name, r.StartLine, r.EndLine)
//	    }
//
//	    // Replace the whole region body. Line endings in the new
//	    // content are normalized to the file's detected terminator.
//	    ok, err := engine.Write("index.html", "header", "<h1>Hello</h1>")
//	    if err != nil {
//	        panic(err)
//	    }
//	    if !ok {
//	        fmt.Println("region not found")
//	    }
//	}
//
// # Tool Surface
//
// The toolset subpackage exposes each operation as a schema-validated
// tool callable with untyped argument maps, plus a langchaingo tool
// catalog for binding the operations to an LLM:
//
//	registry, _ := toolset.NewDefault(engine)
//	result, err := registry.Call(ctx, "read_region", map[string]any{
//	    "file_path":   "index.html",
//	    "region_name": "header",
//	})
//
// # Error Model
//
// Absence is not failure: a missing file scans to an empty region
// list, and a missing region reports a false/not-found result.
// Structural marker violations surface as typed errors from direct
// Regions calls; composite operations downgrade them to a logged error
// plus a not-found result. I/O failures other than a missing file
// (permissions, unreadable paths) are never downgraded: every
// operation logs and returns them.
package regionedit
