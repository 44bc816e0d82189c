package archive

import "errors"

// ErrUnpack indicates a structurally inconsistent packed stream: truncated
// tar data, an entry escaping the destination, or an invalid compressed
// stream. After a successful decryption this points at logic or storage
// corruption rather than a wrong password.
var ErrUnpack = errors.New("corrupt packed directory stream")
