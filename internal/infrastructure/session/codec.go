package session

import (
	"encoding/json"

	"dmless/internal/domain/screening"
)

// Sessions round-trip through JSON in both stores so the memory fallback
// behaves identically to Redis, including losing unexported state.
func marshalSession(sess *screening.Session) ([]byte, error) {
	return json.Marshal(sess)
}

func unmarshalSession(b []byte) (*screening.Session, error) {
	var sess screening.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}
