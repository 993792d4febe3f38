// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadUpgradeDefinitions читает файл конфигурации дерева навыков.
// При пустом пути возвращается встроенное дерево.
func LoadUpgradeDefinitions(path string) ([]UpgradeDefinition, error) {
	if path == "" {
		return DefaultUpgrades(), nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade definitions file: %w", err)
	}

	var upgradeDefs []UpgradeDefinition
	if err := json.Unmarshal(file, &upgradeDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal upgrade definitions: %w", err)
	}
	if len(upgradeDefs) == 0 {
		return nil, fmt.Errorf("upgrade definitions file %s is empty", path)
	}

	return upgradeDefs, nil
}
