package validate

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"churchEvents/internal/lib/api/response"
	"churchEvents/internal/models"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ConfigValue checks that value can be read as typ. TEXT accepts anything.
func ConfigValue(field string, typ models.ConfigType, value string) []response.FieldError {
	var ok bool
	var msg string

	switch typ {
	case models.ConfigText:
		return nil
	case models.ConfigNumber:
		_, err := strconv.ParseFloat(value, 64)
		ok, msg = err == nil, "deve ser um número"
	case models.ConfigBoolean:
		ok, msg = value == "true" || value == "false", "deve ser true ou false"
	case models.ConfigJSON:
		ok, msg = json.Valid([]byte(value)), "deve ser um JSON válido"
	case models.ConfigColor:
		ok, msg = colorPattern.MatchString(value), "deve ser uma cor hexadecimal (#RGB ou #RRGGBB)"
	case models.ConfigImage, models.ConfigURL:
		ok, msg = isURLOrPath(value), "deve ser uma URL absoluta ou um caminho iniciado por /"
	default:
		return []response.FieldError{{
			Field:   "type",
			Rule:    "config_type",
			Message: "type deve ser TEXT, NUMBER, BOOLEAN, JSON, COLOR, IMAGE ou URL",
		}}
	}

	if ok {
		return nil
	}

	return []response.FieldError{{
		Field:   field,
		Rule:    "config_" + strings.ToLower(string(typ)),
		Message: field + " " + msg,
	}}
}

func isURLOrPath(value string) bool {
	if strings.HasPrefix(value, "/") && !strings.HasPrefix(value, "//") {
		return true
	}

	u, err := url.Parse(value)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
