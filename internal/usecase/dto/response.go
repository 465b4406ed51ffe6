package dto

// SyncResult - итог синхронизации с внешним API
type SyncResult struct {
	Pages      int     `json:"pages"`
	Fetched    int     `json:"fetched"`
	NonRide    int     `json:"non_ride"`
	Known      int     `json:"known"`
	Stored     []int64 `json:"stored"`
	Invalidate bool    `json:"cache_invalidated"`
}

// ImportResult - итог импорта поездок из файла
type ImportResult struct {
	Read     int     `json:"read"`
	Stored   int     `json:"stored"`
	Rejected []int64 `json:"rejected,omitempty"`
}
