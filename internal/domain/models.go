package domain

// MaxRecent caps the recently-used list
const MaxRecent = 10

// UsageRecord is the persisted usage state
type UsageRecord struct {
	Usage        map[string]int `json:"usage"`
	RecentlyUsed []string       `json:"recently_used"`
}

// NewUsageRecord returns an empty record with initialised maps
func NewUsageRecord() UsageRecord {
	return UsageRecord{
		Usage:        make(map[string]int),
		RecentlyUsed: make([]string, 0, MaxRecent),
	}
}

// SaveMode describes how the output artifact is written
type SaveMode int

const (
	SaveNew SaveMode = iota
	SaveOverwrite
	SaveAppend
)

func (m SaveMode) String() string {
	switch m {
	case SaveOverwrite:
		return "overwrite"
	case SaveAppend:
		return "append"
	default:
		return "new"
	}
}

// SaveResult reports what a save wrote
type SaveResult struct {
	Path  string
	Mode  SaveMode
	Bytes int // characters written by this save, excluding preserved bytes
}
