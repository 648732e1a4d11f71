package storage

import "fmt"

// OrderStatus is carried over the wire as its numeric code.
// This table is the single source for the mapping, do not
// redeclare it anywhere else.
type OrderStatus int

const (
	StatusUnassigned OrderStatus = 0
	StatusInProgress OrderStatus = 1
	StatusCancelled  OrderStatus = 2
	StatusCompleted  OrderStatus = 3
)

var statusNames = map[OrderStatus]string{
	StatusUnassigned: "Atanmamış",
	StatusInProgress: "Devam Ediyor",
	StatusCancelled:  "İptal",
	StatusCompleted:  "Tamamlandı",
}

func (s OrderStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("OrderStatus(%d)", int(s))
}

func (s OrderStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseOrderStatus validates a wire code coming from a request body.
func ParseOrderStatus(code int) (OrderStatus, error) {
	s := OrderStatus(code)
	if !s.Valid() {
		return 0, fmt.Errorf("unknown order status code %d", code)
	}
	return s, nil
}
