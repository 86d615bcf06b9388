package stadium

import "fmt"

// Stadium is an upstream venue. City and state are optional.
type Stadium struct {
	ESPNID int64
	Name   string
	Grass  bool
	Indoor bool
	City   *string
	State  *string
}

func (s Stadium) Validate() error {
	if s.ESPNID == 0 {
		return fmt.Errorf("stadium espn id is required")
	}
	return nil
}
