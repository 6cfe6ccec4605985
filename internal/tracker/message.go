package tracker

// SelectMessage returns the detail of the most advanced resolved stage.
// The boolean is false while no stage has been resolved yet.
func SelectMessage(stages Stages) (string, bool) {
	for idx := len(stages) - 1; idx >= 0; idx-- {
		if stages[idx].Resolved() {
			return stages[idx].Detail, true
		}
	}
	return "", false
}
