package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/responses"
)

// WriteYAML encodes the responses as a YAML document stream, one document per run.
func WriteYAML(w io.Writer, runs ...responses.ScheduleResponse) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range runs {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding %s results: %w", r.Policy, err)
		}
	}
	return enc.Close()
}
