package postgres

// Лимиты выборок
const (
	// DefaultQueryLimit - 0 означает "без лимита"
	DefaultQueryLimit = 0
	// MaxQueryLimit - максимальный лимит для запросов
	MaxQueryLimit = 10000
	// BatchSize - размер пачки при массовой вставке
	BatchSize = 500
)

// normalizeLimit приводит лимит к допустимому диапазону
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

// chunkIDs разбивает ids на пачки по size элементов
func chunkIDs(ids []int64, size int) [][]int64 {
	if size <= 0 {
		size = BatchSize
	}
	chunks := make([][]int64, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
