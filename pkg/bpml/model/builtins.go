package model

// Built-in DSL type mappings consumed by the code generators.

var JavaTypeByAttribute = map[AttributeType]string{
	AttributeTypeString:   "String",
	AttributeTypeInt:      "Integer",
	AttributeTypeFloat:    "Float",
	AttributeTypeBoolean:  "Boolean",
	AttributeTypeDate:     "LocalDate",
	AttributeTypeDateTime: "LocalDateTime",
	AttributeTypeEmail:    "String",
	AttributeTypePhone:    "String",
	AttributeTypeURL:      "String",
	AttributeTypeText:     "String",
}

var TypeScriptTypeByAttribute = map[AttributeType]string{
	AttributeTypeString:   "string",
	AttributeTypeInt:      "number",
	AttributeTypeFloat:    "number",
	AttributeTypeBoolean:  "boolean",
	AttributeTypeDate:     "string",
	AttributeTypeDateTime: "string",
	AttributeTypeEmail:    "string",
	AttributeTypePhone:    "string",
	AttributeTypeURL:      "string",
	AttributeTypeText:     "string",
}

// FormFieldByAttribute maps entity attribute types to the form field type
// used when deriving CRUD forms.
var FormFieldByAttribute = map[AttributeType]FieldType{
	AttributeTypeString:   FieldTypeText,
	AttributeTypeInt:      FieldTypeNumber,
	AttributeTypeFloat:    FieldTypeNumber,
	AttributeTypeBoolean:  FieldTypeCheckbox,
	AttributeTypeDate:     FieldTypeDate,
	AttributeTypeDateTime: FieldTypeDatetime,
	AttributeTypeEmail:    FieldTypeEmail,
	AttributeTypePhone:    FieldTypeText,
	AttributeTypeURL:      FieldTypeText,
	AttributeTypeText:     FieldTypeTextarea,
}
