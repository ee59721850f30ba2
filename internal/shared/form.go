package shared

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FormValue is raw form input text. JSON numbers are accepted and kept verbatim
// so parsing rules stay in one place.
type FormValue string

// UnmarshalJSON accepts strings, numbers and null.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(data)
	return nil
}

// String returns the trimmed text.
func (v FormValue) String() string {
	return strings.TrimSpace(string(v))
}

// Float parses the value as a decimal number.
func (v FormValue) Float() (float64, error) {
	return strconv.ParseFloat(v.String(), 64)
}

// Int parses the value as a base-10 integer.
func (v FormValue) Int() (int, error) {
	return strconv.Atoi(v.String())
}
