package models

// Document represents a generic JSON configuration object, such as one
// dashboard. Only the handful of fields the copy touches are ever
// inspected; everything else passes through unchanged.
type Document map[string]interface{}

// objectAt walks nested objects down to the parent of the last path
// element. Returns nil when any intermediate step is missing or not an
// object.
func (d Document) objectAt(path ...string) map[string]interface{} {
	cur := map[string]interface{}(d)
	for _, key := range path {
		next, ok := cur[key].(map[string]interface{})
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// Remove deletes the value at the given path. Removing a path whose
// parent objects do not exist is a no-op.
func (d Document) Remove(path ...string) {
	if len(path) == 0 {
		return
	}
	parent := d.objectAt(path[:len(path)-1]...)
	if parent == nil {
		return
	}
	delete(parent, path[len(path)-1])
}

// Set writes value at the given path, creating intermediate objects as
// needed.
func (d Document) Set(value interface{}, path ...string) {
	if len(path) == 0 {
		return
	}
	cur := map[string]interface{}(d)
	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			cur[key] = next
		}
		cur = next
	}
	cur[path[len(path)-1]] = value
}

// StringAt returns the string value at the given path, or "" when the
// path is missing or not a string.
func (d Document) StringAt(path ...string) string {
	if len(path) == 0 {
		return ""
	}
	parent := d.objectAt(path[:len(path)-1]...)
	if parent == nil {
		return ""
	}
	v, _ := parent[path[len(path)-1]].(string)
	return v
}
