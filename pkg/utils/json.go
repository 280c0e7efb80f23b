package utils

import "encoding/json"

// CompactJSON serializa um valor para sua forma JSON compacta. A API do Meta
// exige specs de regras como strings JSON dentro de campos de formulário.
func CompactJSON(in any) (string, error) {
	buffer, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	return string(buffer), nil
}
