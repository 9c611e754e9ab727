package chain

// Insert вставка нового узла со значением v рядом с current.
// При after == true узел встаёт сразу после current, иначе сразу перед ним.
// Если current == nil возвращается изолированный узел, который вызывающий
// должен считать головой новой цепочки.
func Insert[T any](current *Node[T], v T, after bool) *Node[T] {
	n := NewValue(v)
	if current == nil {
		return n
	}

	if after {
		n.prev = current
		n.next = current.next
		if current.next != nil {
			current.next.prev = n
		}
		current.next = n
		return n
	}

	n.next = current
	n.prev = current.prev
	if current.prev != nil {
		current.prev.next = n
	}
	current.prev = n

	return n
}

// InsertAfter то же, что Insert(current, v, true).
func InsertAfter[T any](current *Node[T], v T) *Node[T] {
	return Insert(current, v, true)
}

// InsertBefore то же, что Insert(current, v, false).
func InsertBefore[T any](current *Node[T], v T) *Node[T] {
	return Insert(current, v, false)
}
