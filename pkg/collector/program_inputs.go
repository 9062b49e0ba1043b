package collector

// ProgramInputs combines discovered class files with the given archives into
// one ordered, deduplicated list. Archives are appended unchanged, after the
// class files, preserving first occurrence.
func (c *realCollector) ProgramInputs(dirs, archives []string) ([]string, error) {
	files, err := c.ClassFiles(dirs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(files))
	for _, file := range files {
		seen[file] = struct{}{}
	}

	inputs := files
	for _, archive := range archives {
		if _, ok := seen[archive]; ok {
			continue
		}
		seen[archive] = struct{}{}
		inputs = append(inputs, archive)
	}
	return inputs, nil
}
