package entity

// DirectorySnapshot is the cache envelope persisted to local storage after a
// successful fetch: the business list, the derived category set and the time
// the snapshot was taken.
type DirectorySnapshot struct {
	Businesses  []*Business `json:"businesses"`
	Categories  []string    `json:"categories"`
	LastUpdated int64       `json:"lastUpdated"` // Epoch milliseconds.
}
