package chain

import "github.com/sirkon/errors"

// Remove удаление узла target из его цепочки.
// Возвращает узел для продолжения обхода: предыдущий, если он есть,
// иначе следующий, иначе nil: цепочка опустела.
func Remove[T any](target *Node[T]) (*Node[T], error) {
	if target == nil {
		return nil, errors.Wrap(ErrNilNode, "remove node")
	}

	prev := target.prev
	next := target.next
	if prev != nil {
		prev.next = next
	}
	if next != nil {
		next.prev = prev
	}

	target.release()

	if prev != nil {
		return prev, nil
	}

	return next, nil
}
