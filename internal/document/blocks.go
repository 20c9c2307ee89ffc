package document

import "strings"

// Block is a tracked insertion into the buffer, used for the pending
// operation placeholders. A revert removes or replaces the exact block
// that was inserted instead of doing free-form substring surgery, so a
// failed operation can never slice unrelated user text.
type Block struct {
	sep  string
	text string
}

// Text returns the block's content without its separator.
func (b Block) Text() string {
	return b.text
}

// AppendBlock appends text to the buffer as a new paragraph and returns
// the tracked block for a later RemoveBlock or ReplaceBlock.
func AppendBlock(buf, text string) (string, Block) {
	sep := ""
	if buf != "" {
		sep = "\n\n"
		if strings.HasSuffix(buf, "\n") {
			sep = "\n"
		}
	}
	b := Block{sep: sep, text: text}
	return buf + sep + text, b
}

// RemoveBlock removes the tracked block from the buffer. When the block
// is gone (the user edited it away while an operation was in flight)
// the buffer is returned unchanged and ok is false.
func RemoveBlock(buf string, b Block) (string, bool) {
	return replaceLast(buf, b.sep+b.text, "")
}

// ReplaceBlock swaps the tracked block's text for replacement,
// keeping the separator. Same mid-flight-edit semantics as RemoveBlock.
func ReplaceBlock(buf string, b Block, replacement string) (string, bool) {
	return replaceLast(buf, b.sep+b.text, b.sep+replacement)
}

func replaceLast(buf, old, new string) (string, bool) {
	if old == "" {
		return buf, false
	}
	idx := strings.LastIndex(buf, old)
	if idx < 0 {
		return buf, false
	}
	return buf[:idx] + new + buf[idx+len(old):], true
}
