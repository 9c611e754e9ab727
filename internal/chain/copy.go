package chain

// Copy создание независимой копии цепочки начиная с source.
// Копируются узлы, значения переносятся обычным присваиванием.
func Copy[T any](source *Node[T]) *Node[T] {
	if source == nil {
		return nil
	}

	head := NewValue(source.Data)
	cur := head
	for src := source.next; src != nil; src = src.next {
		cur = InsertAfter(cur, src.Data)
	}

	return head
}
