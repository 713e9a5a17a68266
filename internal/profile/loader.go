package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads and parses a profile snapshot from the given path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Document.
func Parse(data []byte) (*Document, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, fmt.Errorf("malformed profile: %w", err)
	}

	return &doc, nil
}

// validate rejects snapshots that claim more present samples than were
// taken. A recorder can never observe that.
func validate(doc *Document) error {
	for i := range doc.Messages {
		msg := &doc.Messages[i]

		for j := range msg.Fields {
			field := &msg.Fields[j]

			for _, dir := range []struct {
				name    string
				samples DirectionSamples
			}{
				{"read", field.Presence.Read},
				{"write", field.Presence.Write},
			} {
				if dir.samples.Present > dir.samples.Samples {
					return fmt.Errorf("%s.%s: %s present count %d exceeds sample count %d",
						msg.Name, field.Name, dir.name, dir.samples.Present, dir.samples.Samples)
				}
			}
		}
	}

	return nil
}
