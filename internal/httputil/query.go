package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns which fields of a query filter struct are set
// in the URL query string.
//
// queryFields contains the struct field names that can be passed
// directly to a gorm Where statement to select the columns filtered
// on. Fields tagged with filterField:"false" are excluded, they carry
// values that need explicit handling in the controller.
func GetURLFields(url *url.URL, filter any) []any {
	var queryFields []any

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) && filterField != "false" {
			queryFields = append(queryFields, field)
		}
	}

	return queryFields
}
