package utils

import "strings"

// SplitList quebra um parâmetro "a,b,c" ignorando itens vazios
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
