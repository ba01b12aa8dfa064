// Package jsonutil contains small helpers for reshaping decoded JSON before
// it is returned to the calling agent.
package jsonutil

// RemoveKeys deletes the given keys from a decoded JSON value. The value may
// be an object or a list of objects; keys that are absent and list members
// that are not objects are left alone. The input is modified in place and
// returned for convenience.
func RemoveKeys(data interface{}, keys ...string) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		for _, key := range keys {
			delete(v, key)
		}
	case []map[string]interface{}:
		for _, item := range v {
			for _, key := range keys {
				delete(item, key)
			}
		}
	case []interface{}:
		for _, item := range v {
			if obj, ok := item.(map[string]interface{}); ok {
				for _, key := range keys {
					delete(obj, key)
				}
			}
		}
	}
	return data
}
