package utils

import "strings"

// UniqueFileName derives a collision-free storage name for an upload.
//
// The result is the part of original before its first dot, then id, then
// the extension after its last dot: "cat.photo.png" becomes
// "cat<id>.png". A name without a dot becomes original+id.
func UniqueFileName(original, id string) string {
	first := strings.IndexByte(original, '.')
	if first < 0 {
		return original + id
	}

	last := strings.LastIndexByte(original, '.')
	return original[:first] + id + "." + original[last+1:]
}
