package domain

// Response is the structured form of a panel reply. Scalar reply fields land
// in Fields; listing commands additionally carry one Snapshot per row, built
// by zipping the reply's column header with each row's values.
//
// The transport adapter guarantees that a Response it hands out signalled
// success; rejected commands surface as ErrCommandRejected instead.
type Response struct {
	Fields Snapshot
	Rows   []Snapshot
}

// Field returns a scalar reply field.
func (r *Response) Field(key string) (string, error) {
	return r.Fields.Field(key)
}
