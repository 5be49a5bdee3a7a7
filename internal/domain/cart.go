package domain

// CartLine is one line of the remote cart as the backend returned it.
// Lines are never mutated in place; the whole snapshot is replaced after
// every successful mutation round-trip.
type CartLine struct {
	ID         int64             `json:"id"`
	ProductID  int64             `json:"product_id"`
	Name       string            `json:"product_name"`
	UnitPrice  float64           `json:"unit_price"`
	Quantity   int               `json:"quantity"`
	Variations map[string]string `json:"variations,omitempty"`
	Subtotal   float64           `json:"sub_total"`
}

// CartSnapshot represents the full cart state as of the last reload.
type CartSnapshot struct {
	Lines []CartLine `json:"lines"`
}

// ItemCount is the sum of line quantities.
func (s CartSnapshot) ItemCount() int {
	count := 0
	for _, l := range s.Lines {
		count += l.Quantity
	}
	return count
}

// Subtotal is the sum of server-computed line subtotals.
func (s CartSnapshot) Subtotal() float64 {
	total := 0.0
	for _, l := range s.Lines {
		total += l.Subtotal
	}
	return total
}

func (s CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Clone returns a copy whose line slice does not alias the original.
func (s CartSnapshot) Clone() CartSnapshot {
	lines := make([]CartLine, len(s.Lines))
	copy(lines, s.Lines)
	return CartSnapshot{Lines: lines}
}
