package machine

// Labels maps a label name to the index of the line defining it.
type Labels map[string]int

const StartLabel = "Start"

func indexLabels(lines []Line) (Labels, error) {
	labels := make(Labels)
	for i, line := range lines {
		label, ok := line.Instr.(Label)
		if !ok {
			continue
		}
		if _, ok := labels[label.Name]; ok {
			return nil, loadError(DuplicateLabel, label.Name)
		}
		labels[label.Name] = i
	}
	if _, ok := labels[StartLabel]; !ok {
		return nil, loadError(MissingStartLabel, "")
	}
	return labels, nil
}
