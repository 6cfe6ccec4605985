package tracker

// Percentage converts the position of the first pending stage into overall
// progress. The pending stage itself does not count, so the result is one of
// 0, 25, 50, 75 or 100.
func Percentage(stages Stages) int {
	for idx, stage := range stages {
		if !stage.Resolved() {
			return idx * 100 / len(stages)
		}
	}
	return 100
}
