package model

// EntryStatus represents the tagging state of an image within a session
type EntryStatus string

const (
	// EntryStatusUntagged means the image has no entry in the tag store yet
	EntryStatusUntagged EntryStatus = "Untagged"

	// EntryStatusTagged means the image has an entry in the tag store (possibly with no tags)
	EntryStatusTagged EntryStatus = "Tagged"

	// EntryStatusSkipped means the user moved past the image without committing tags
	EntryStatusSkipped EntryStatus = "Skipped"
)

// String returns the string representation of EntryStatus
func (es EntryStatus) String() string {
	return string(es)
}

// IsTagged returns true if the image has been written to the tag store
func (es EntryStatus) IsTagged() bool {
	return es == EntryStatusTagged
}

// NeedsAttention returns true if the image still has to be looked at
func (es EntryStatus) NeedsAttention() bool {
	return es == EntryStatusUntagged || es == EntryStatusSkipped
}
