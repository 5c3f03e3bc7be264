package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var uuidToString = copier.TypeConverter{
	SrcType: uuid.UUID{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		return src.(uuid.UUID).String(), nil
	},
}

var optionalUUIDToString = copier.TypeConverter{
	SrcType: &uuid.UUID{},
	DstType: new(string),
	Fn: func(src any) (any, error) {
		id, _ := src.(*uuid.UUID)
		if id == nil {
			return (*string)(nil), nil
		}
		s := id.String()
		return &s, nil
	},
}
