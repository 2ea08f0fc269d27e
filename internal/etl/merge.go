package etl

// MergeResult reports what a merge did.
type MergeResult struct {
	Rows       []Row
	TotalRead  int
	Duplicates int
	PerLevel   map[string]int
}

// Merge normalizes and concatenates the per-level row sets, dropping
// duplicate rows by their merge key and keeping first occurrences. The
// per-level counts describe the deduplicated output.
func Merge(inputs ...[]Row) MergeResult {
	result := MergeResult{PerLevel: make(map[string]int)}

	seen := make(map[string]struct{})
	for _, rows := range inputs {
		for _, row := range NormalizeRows(rows) {
			result.TotalRead++
			key := row.MergeKey()
			if _, dup := seen[key]; dup {
				result.Duplicates++
				continue
			}
			seen[key] = struct{}{}
			result.Rows = append(result.Rows, row)
			result.PerLevel[row.LevelCode]++
		}
	}
	return result
}
