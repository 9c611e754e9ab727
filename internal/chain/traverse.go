package chain

// Values значения цепочки начиная с head в прямом порядке.
func Values[T any](head *Node[T]) []T {
	var res []T
	for n := head; n != nil; n = n.next {
		res = append(res, n.Data)
	}

	return res
}

// FromValues построение цепочки из данных значений. Возвращает голову или
// nil при пустом наборе.
func FromValues[T any](vs ...T) *Node[T] {
	var head, cur *Node[T]
	for _, v := range vs {
		cur = InsertAfter(cur, v)
		if head == nil {
			head = cur
		}
	}

	return head
}

// Head голова цепочки, в которой находится n.
func Head[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	for n.prev != nil {
		n = n.prev
	}
	return n
}

// Tail хвост цепочки, в которой находится n.
func Tail[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	for n.next != nil {
		n = n.next
	}
	return n
}

// Equal проверка совпадения последовательностей значений цепочек.
func Equal[T comparable](a, b *Node[T]) bool {
	for a != nil && b != nil {
		if a.Data != b.Data {
			return false
		}
		a = a.next
		b = b.next
	}

	return a == nil && b == nil
}
