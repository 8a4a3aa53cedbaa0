package model

// Data roles a column can be bound to.
const (
	RoleCategory = "category"
	RoleMeasure  = "measure"
)

// Objects holds persisted property values keyed by object name, then property name.
type Objects map[string]map[string]any

// Get returns the raw value stored for object/property.
func (o Objects) Get(object, property string) (any, bool) {
	if o == nil {
		return nil, false
	}
	props, ok := o[object]
	if !ok {
		return nil, false
	}
	v, ok := props[property]
	return v, ok
}

// Set stores value for object/property, creating the object map when missing.
func (o Objects) Set(object, property string, value any) {
	props, ok := o[object]
	if !ok {
		props = map[string]any{}
		o[object] = props
	}
	props[property] = value
}

// Column describes one column of a query result.
type Column struct {
	DisplayName string          `json:"displayName"`
	QueryName   string          `json:"queryName"`
	Roles       map[string]bool `json:"roles,omitempty"`
}

// CategoryColumn is a grouping column with one value per row.
type CategoryColumn struct {
	Source Column `json:"source"`
	Values []any  `json:"values"`
}

// ValueColumn is a measure column aligned with the category rows.
type ValueColumn struct {
	Source Column `json:"source"`
	Values []any  `json:"values"`
}

// Categorical is the category/measure shaped view of a query result.
type Categorical struct {
	Categories []CategoryColumn `json:"categories,omitempty"`
	Values     []ValueColumn    `json:"values,omitempty"`
}

// Metadata carries column descriptions and the persisted objects.
type Metadata struct {
	Columns []Column `json:"columns,omitempty"`
	Objects Objects  `json:"objects,omitempty"`
}

// DataView is one query result handed to the visual on update.
type DataView struct {
	Metadata    Metadata     `json:"metadata"`
	Categorical *Categorical `json:"categorical,omitempty"`
}

// Rows returns the number of category rows, or 0 when there is no category column.
func (dv *DataView) Rows() int {
	if dv == nil || dv.Categorical == nil || len(dv.Categorical.Categories) == 0 {
		return 0
	}
	return len(dv.Categorical.Categories[0].Values)
}
