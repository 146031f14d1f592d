package model

// The enumerated value sets of the language are closed. Validators reject any
// value outside its set.

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var Priorities = []Priority{PriorityLow, PriorityNormal, PriorityHigh, PriorityCritical}

func (p Priority) Valid() bool {
	for _, known := range Priorities {
		if p == known {
			return true
		}
	}
	return false
}

type ScriptLanguage string

const (
	ScriptLanguageJavaScript ScriptLanguage = "javascript"
	ScriptLanguageGroovy     ScriptLanguage = "groovy"
	ScriptLanguagePython     ScriptLanguage = "python"
)

var ScriptLanguages = []ScriptLanguage{ScriptLanguageJavaScript, ScriptLanguageGroovy, ScriptLanguagePython}

func (l ScriptLanguage) Valid() bool {
	for _, known := range ScriptLanguages {
		if l == known {
			return true
		}
	}
	return false
}

type JoinType string

const (
	JoinTypeAll JoinType = "all"
	JoinTypeAny JoinType = "any"
)

var JoinTypes = []JoinType{JoinTypeAll, JoinTypeAny}

func (j JoinType) Valid() bool {
	for _, known := range JoinTypes {
		if j == known {
			return true
		}
	}
	return false
}

type Cardinality string

const (
	CardinalityZeroOne   Cardinality = "@0..1"
	CardinalityOneOne    Cardinality = "@1..1"
	CardinalityZeroMany  Cardinality = "@0..*"
	CardinalityOneMany   Cardinality = "@1..*"
	CardinalityManyOne   Cardinality = "@*..1"
	CardinalityManyMany  Cardinality = "@*..*"
)

var Cardinalities = []Cardinality{
	CardinalityZeroOne, CardinalityOneOne, CardinalityZeroMany,
	CardinalityOneMany, CardinalityManyOne, CardinalityManyMany,
}

func (c Cardinality) Valid() bool {
	for _, known := range Cardinalities {
		if c == known {
			return true
		}
	}
	return false
}

type AttributeType string

const (
	AttributeTypeString   AttributeType = "string"
	AttributeTypeInt      AttributeType = "int"
	AttributeTypeFloat    AttributeType = "float"
	AttributeTypeBoolean  AttributeType = "boolean"
	AttributeTypeDate     AttributeType = "date"
	AttributeTypeDateTime AttributeType = "dateTime"
	AttributeTypeEmail    AttributeType = "email"
	AttributeTypePhone    AttributeType = "phone"
	AttributeTypeURL      AttributeType = "url"
	AttributeTypeText     AttributeType = "text"
)

var AttributeTypes = []AttributeType{
	AttributeTypeString, AttributeTypeInt, AttributeTypeFloat, AttributeTypeBoolean,
	AttributeTypeDate, AttributeTypeDateTime, AttributeTypeEmail, AttributeTypePhone,
	AttributeTypeURL, AttributeTypeText,
}

func (t AttributeType) Valid() bool {
	for _, known := range AttributeTypes {
		if t == known {
			return true
		}
	}
	return false
}

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeDatetime FieldType = "datetime"
	FieldTypeCheckbox FieldType = "checkbox"
	FieldTypeSelect   FieldType = "select"
	FieldTypeRadio    FieldType = "radio"
	FieldTypeFile     FieldType = "file"
	FieldTypeEmail    FieldType = "email"
	FieldTypePassword FieldType = "password"
)

var FieldTypes = []FieldType{
	FieldTypeText, FieldTypeTextarea, FieldTypeNumber, FieldTypeDate,
	FieldTypeDatetime, FieldTypeCheckbox, FieldTypeSelect, FieldTypeRadio,
	FieldTypeFile, FieldTypeEmail, FieldTypePassword,
}

func (t FieldType) Valid() bool {
	for _, known := range FieldTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ValidationType string

const (
	ValidationTypeMin       ValidationType = "min"
	ValidationTypeMax       ValidationType = "max"
	ValidationTypeMinLength ValidationType = "minLength"
	ValidationTypeMaxLength ValidationType = "maxLength"
	ValidationTypePattern   ValidationType = "pattern"
	ValidationTypeEmail     ValidationType = "email"
	ValidationTypeRequired  ValidationType = "required"
)

var ValidationTypes = []ValidationType{
	ValidationTypeMin, ValidationTypeMax, ValidationTypeMinLength,
	ValidationTypeMaxLength, ValidationTypePattern, ValidationTypeEmail,
	ValidationTypeRequired,
}

func (t ValidationType) Valid() bool {
	for _, known := range ValidationTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ChartType string

const (
	ChartTypeBar   ChartType = "bar"
	ChartTypeLine  ChartType = "line"
	ChartTypePie   ChartType = "pie"
	ChartTypeDonut ChartType = "donut"
)

var ChartTypes = []ChartType{ChartTypeBar, ChartTypeLine, ChartTypePie, ChartTypeDonut}

func (t ChartType) Valid() bool {
	for _, known := range ChartTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ActionType string

const (
	ActionTypeView     ActionType = "view"
	ActionTypeEdit     ActionType = "edit"
	ActionTypeComplete ActionType = "complete"
	ActionTypeCancel   ActionType = "cancel"
	ActionTypeReassign ActionType = "reassign"
)

var ActionTypes = []ActionType{
	ActionTypeView, ActionTypeEdit, ActionTypeComplete, ActionTypeCancel, ActionTypeReassign,
}

func (t ActionType) Valid() bool {
	for _, known := range ActionTypes {
		if t == known {
			return true
		}
	}
	return false
}
