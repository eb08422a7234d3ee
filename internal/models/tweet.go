package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Tweet struct {
	ID       uint      `gorm:"primaryKey"`
	Content  string    `gorm:"size:10000;not null"`
	MediaIDs Int64List `gorm:"type:text"`
	AuthorID uint      `gorm:"index;not null"`

	// Связи
	Author User `gorm:"foreignKey:AuthorID"`
}

// Int64List хранит список ID медиафайлов твита как JSON.
// Ссылки слабые: несуществующий ID не ошибка, он просто не откроется.
type Int64List []int64

func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		l = Int64List{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *Int64List) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into Int64List", value)
	}
}
