package model

// Form describes the input collected by a user task. Field names are unique
// within one form.
type Form struct {
	Name   string  `yaml:"name" json:"name"`
	Title  string  `yaml:"title,omitempty" json:"title,omitempty"`
	Fields []Field `yaml:"fields" json:"fields"`
}

type Field struct {
	Name        string           `yaml:"name" json:"name"`
	Label       string           `yaml:"label,omitempty" json:"label,omitempty"`
	FieldType   FieldType        `yaml:"fieldType" json:"fieldType"`
	Required    bool             `yaml:"required,omitempty" json:"required,omitempty"`
	ReadOnly    bool             `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	Validations []ValidationRule `yaml:"validations,omitempty" json:"validations,omitempty"`
}

type ValidationRule struct {
	Type  ValidationType `yaml:"type" json:"type"`
	Value string         `yaml:"value,omitempty" json:"value,omitempty"`
}
