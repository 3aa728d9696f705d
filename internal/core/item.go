package core

// ItemKind tells how an expected item is tested against a container.
type ItemKind int

// Expected item kinds.
const (
	// ItemLiteral is compared by equality.
	ItemLiteral ItemKind = iota
	// ItemPredicate tests candidates itself.
	ItemPredicate
	// ItemPairs is a partial mapping: a set of key/value sub-expectations.
	ItemPairs
)

// Item is one captured expected item.
type Item struct {
	value any
	kind  ItemKind
	pairs Hash
}

// Capture classifies an expected value. The tag check happens before any
// other inspection, so a mapping that happens to be a predicate stays a
// predicate.
func Capture(value any) Item {
	if _, ok := AsPredicate(value); ok {
		return Item{value: value, kind: ItemPredicate}
	}

	if pairs, ok := asHash(value); ok {
		return Item{value: value, kind: ItemPairs, pairs: pairs}
	}

	return Item{value: value, kind: ItemLiteral}
}

// CaptureAll captures every value, preserving order.
func CaptureAll(values []any) []Item {
	items := make([]Item, len(values))
	for i, value := range values {
		items[i] = Capture(value)
	}

	return items
}

// DiffLines renders the item as diff lines: one per entry for partial
// mappings, a single line otherwise.
func (i Item) DiffLines() []string {
	if i.kind == ItemPairs {
		return DiffLines(i.pairs)
	}

	return []string{i.String()}
}

// Kind returns how the item is tested.
func (i Item) Kind() ItemKind {
	return i.kind
}

// String renders the item for messages. Partial mappings render as mapping
// literals, predicates as their description.
func (i Item) String() string {
	if i.kind == ItemPairs {
		return renderHash(i.pairs)
	}

	return Render(i.value)
}

// Value returns the value the item was captured from.
func (i Item) Value() any {
	return i.value
}

// Values returns the captured values of items, preserving order.
func Values(items []Item) []any {
	values := make([]any, len(items))
	for i, item := range items {
		values[i] = item.value
	}

	return values
}
