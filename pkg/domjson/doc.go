// Package domjson reconstructs virtual node trees from a generic,
// JSON-compatible representation of a foreign runtime's tree.
//
// Runtime-native properties are classified into the model's buckets by
// inspecting value types; structural fields (tagName, children, style,
// attributes) shape the tree. Unrecognized shapes fail with an
// adapter-category error.
package domjson
