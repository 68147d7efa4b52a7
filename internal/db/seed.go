package db

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFleet reads the seed fleet from a JSON file of the form
// {"cars": [{"id": 1, "name": "SEAT Ibiza"}, ...]}.
func LoadFleet(path string) ([]Car, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fleet file %s: %w", path, err)
	}
	defer file.Close()

	var data struct {
		Cars []Car `json:"cars"`
	}
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode fleet file %s: %w", path, err)
	}
	if len(data.Cars) == 0 {
		return nil, fmt.Errorf("fleet file %s contains no cars", path)
	}
	return data.Cars, nil
}
