package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Snowflake is a Discord id. It is stored as BIGINT and always serialized
// as a JSON string so browsers do not lose precision; both strings and
// numbers are accepted on input.
type Snowflake int64

func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid snowflake %q", s)
	}
	return Snowflake(v), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), 10)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Snowflake) UnmarshalJSON(data []byte) error {
	raw := bytes.Trim(data, `"`)
	v, err := ParseSnowflake(string(raw))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Actionneur is a privileged user. Its id is the member's Discord id.
type Actionneur struct {
	ID       Snowflake `json:"id"`
	Username string    `json:"username"`
	IsAdmin  bool      `json:"is_admin"`
}

type CreateActionneurRequest struct {
	ID       Snowflake `json:"id" binding:"required"`
	Username string    `json:"username" binding:"required,max=50"`
	IsAdmin  bool      `json:"is_admin"`
}
