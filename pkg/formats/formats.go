// Package formats encodes generated hexasphere worlds for external
// consumers.
package formats

// Note: HXW (binary world snapshot) is fully implemented in hxw.go
// Note: Wavefront OBJ export is fully implemented in obj.go
// Note: JSON export is fully implemented in json.go
