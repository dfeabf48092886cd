// Package render serializes a validated model and its function table into
// the public header, the extension header and the internal header.
//
// Fixed boilerplate (banners, the default base header and the entrypoint
// macros) lives in embedded text/template files; declarations, struct members
// and the CreateApi body are assembled in Go. Rendering is deterministic: the
// same model always produces byte-identical output.
package render
