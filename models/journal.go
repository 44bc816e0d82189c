package models

import "time"

// OperationRecord is one row of the local operation journal.
//
// The journal stores only non-sensitive operation metadata. Passwords, key
// material, and payload contents are never recorded.
type OperationRecord struct {
	ID         int64
	Mode       string
	TargetPath string
	OutputPath string
	Directory  bool
	Compressed bool
	Removed    bool
	Duration   time.Duration
	CreatedAt  time.Time
}
