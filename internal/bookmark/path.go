package bookmark

import "strings"

// MakePath builds an absolute '/'-separated path from folder name components.
// The empty component list is the root path "/".
func MakePath(components []string) string {
	if len(components) == 0 {
		return "/"
	}
	return "/" + strings.Join(components, "/")
}

// FullPath joins a parent path and a folder name into the folder's own path.
func FullPath(parent, name string) string {
	if parent == "/" {
		parent = ""
	}
	return parent + "/" + name
}

// SplitPath splits an absolute path back into its folder name components.
// SplitPath("/") is empty; SplitPath("/a/b") is ["a", "b"].
func SplitPath(path string) []string {
	if path == "" || path == "/" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(path, "/"), "/")
}

// EscapeName replaces literal '/' characters in a folder name with a
// character reference so the name can never be confused with a path
// separator inside a path key.
func EscapeName(name string) string {
	return strings.ReplaceAll(name, "/", "&#47;")
}
