package undo

// Deadener is implemented by payloads that can drop reconstructible data.
type Deadener interface {
	Deaden()
}

// Awakener is implemented by payloads that can rebuild their derived data
// and publish themselves into live application state.
type Awakener interface {
	Awaken()
}

// Item is one payload in a transaction.
type Item struct {
	// Data is the caller-defined snapshot. The log owns it once committed.
	Data any

	// Deaden strips reconstructible data from the payload. It is called once,
	// right after commit, and returns the value to keep in the log.
	// Pointer payloads can be mutated in place and returned unchanged.
	Deaden func(data any) any

	// Awaken rebuilds derived data and publishes the payload into the
	// application. It is called each time undo or redo lands on the item.
	Awaken func(data any)
}

// NewItem creates an item for a payload implementing Deadener and/or Awakener.
func NewItem(data any) Item {
	return Item{Data: data}
}

func (it *Item) deaden() {
	if it.Deaden != nil {
		it.Data = it.Deaden(it.Data)
		return
	}
	if d, ok := it.Data.(Deadener); ok {
		d.Deaden()
	}
}

func (it *Item) awaken() {
	if it.Awaken != nil {
		it.Awaken(it.Data)
		return
	}
	if a, ok := it.Data.(Awakener); ok {
		a.Awaken()
	}
}

// Transaction is an ordered group of items committed, deadened and awakened
// together.
type Transaction []Item

func (tx Transaction) deaden() {
	for i := range tx {
		tx[i].deaden()
	}
}

func (tx Transaction) awaken() {
	for i := range tx {
		tx[i].awaken()
	}
}
