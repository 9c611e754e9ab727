package chain

// Clear освобождение всех узлов достижимых из *head с установкой *head в nil.
// Если у *head есть предыдущий узел, он становится хвостом оставшейся цепочки.
// Возвращает число освобождённых узлов.
func Clear[T any](head **Node[T]) int {
	n := *head
	if n != nil && n.prev != nil {
		n.prev.next = nil
	}

	var count int
	for n != nil {
		next := n.next
		n.release()
		n = next
		count++
	}

	*head = nil
	return count
}
