// Package layout describes a certificate design: a background template and
// the ordered text and image elements drawn on top of it.
//
// Layouts are produced by an editor and read from JSON or YAML documents:
//
//	lay, err := layout.LoadFile("layout.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := lay.Validate(); err != nil {
//		log.Fatal(err)
//	}
//	keys := lay.PlaceholderKeys() // e.g. ["name", "org"]
//
// Element order is draw order: image elements are drawn first, then text
// elements, each list front to back.
package layout
