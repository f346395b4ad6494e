package utils

import (
	"encoding/json"
	"fmt"
)

// PrettyJson serializa o valor com indentação para logs de depuração
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var compact any
		if err := json.Unmarshal(raw, &compact); err != nil {
			fmt.Println(err)
			return string(raw)
		}
		in = compact
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return string(buffer)
}
