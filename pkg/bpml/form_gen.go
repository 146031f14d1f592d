package bpml

import (
	"regexp"
	"strings"

	"github.com/banzg00/bpml/pkg/bpml/model"
)

// GenerateCrudForms derives create, update and view form definitions from
// the attributes of an entity, for the frontend generator. The view form is
// the create form with every field read-only.
func GenerateCrudForms(entity *model.Entity) map[string]model.Form {
	fields := make([]model.Field, 0, len(entity.Attributes))
	for _, attr := range entity.Attributes {
		fieldType, ok := model.FormFieldByAttribute[attr.Type]
		if !ok {
			fieldType = model.FieldTypeText
		}
		fields = append(fields, model.Field{
			Name:      attr.Name,
			Label:     FieldLabel(attr.Name),
			FieldType: fieldType,
			Required:  !attr.IsOptional,
		})
	}

	viewFields := make([]model.Field, len(fields))
	copy(viewFields, fields)
	for i := range viewFields {
		viewFields[i].ReadOnly = true
	}

	updateFields := make([]model.Field, len(fields))
	copy(updateFields, fields)

	return map[string]model.Form{
		"create": {
			Name:   "Create" + entity.Name + "Form",
			Title:  "Create " + entity.Name,
			Fields: fields,
		},
		"update": {
			Name:   "Update" + entity.Name + "Form",
			Title:  "Update " + entity.Name,
			Fields: updateFields,
		},
		"view": {
			Name:   "View" + entity.Name + "Form",
			Title:  "View " + entity.Name,
			Fields: viewFields,
		},
	}
}

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

// FieldLabel converts a camelCase field name into a title-cased label,
// e.g. "firstName" becomes "First Name".
func FieldLabel(fieldName string) string {
	spaced := camelBoundary.ReplaceAllString(fieldName, "$1 $2")
	words := strings.Fields(spaced)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
