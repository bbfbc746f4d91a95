// internal/models/account.go
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type Role string

const (
	RoleContributor Role = "contributor"
	RoleStudent     Role = "student"
)

func (r Role) Valid() bool {
	return r == RoleContributor || r == RoleStudent
}

// RecordID is a creation-time identifier. Older records hold it as a JSON
// number, newer ones as a string; both decode to the same value.
type RecordID string

func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RecordID(n.String())
	return nil
}

func (id RecordID) String() string {
	return string(id)
}

// NewRecordID formats a Unix millisecond timestamp as an identifier.
func NewRecordID(unixMillis int64) RecordID {
	return RecordID(strconv.FormatInt(unixMillis, 10))
}

// Identity is the single stored account for a role. Registration overwrites it.
type Identity struct {
	ID               RecordID `json:"id,omitempty"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	OrganizationName string   `json:"organizationName,omitempty"`
	FirstName        string   `json:"firstName,omitempty"`
	LastName         string   `json:"lastName,omitempty"`
}
