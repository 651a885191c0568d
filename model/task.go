package model

// TaskInfo describes one bAbI task in the catalog.
type TaskInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
