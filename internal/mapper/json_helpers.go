package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(b)
}

func jsonToStrings(data datatypes.JSON) []string {
	if len(data) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return []string{}
	}
	return values
}
