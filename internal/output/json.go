package output

import (
	"encoding/json"

	"github.com/hanmin/dcasim/internal/domain"
)

// JSONFormatter renders the complete plan result as indented JSON.
type JSONFormatter struct{}

// Format generates JSON output.
func (jf *JSONFormatter) Format(result *domain.PlanResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
