package rulesync

import "strings"

// ReplaceRegion swaps the span delimited by the first occurrence of start
// and end markers in doc with block (which includes the markers). When
// either marker is missing the region is treated as absent and block is
// appended after a blank line instead. The returned bool reports whether an
// existing region was replaced.
func ReplaceRegion(doc, start, end, block string) (string, bool) {
	startIdx := strings.Index(doc, start)
	endIdx := strings.Index(doc, end)
	if startIdx == -1 || endIdx == -1 {
		return doc + "\n\n" + block, false
	}

	pre := doc[:startIdx]
	post := doc[endIdx+len(end):]
	return pre + block + post, true
}
